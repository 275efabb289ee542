package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"popout/models"
	"popout/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const stateCookieName = "oauth_state"

// GoogleOAuthConfig builds the authorization-code flow config from the
// environment.
func GoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleLogin starts the OAuth flow with a random state nonce.
func GoogleLogin(conf *oauth2.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := uuid.NewString()
		c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
		c.Redirect(http.StatusFound, conf.AuthCodeURL(state))
	}
}

// GoogleCallback exchanges the code, upserts the user by google_id and
// sets the session cookie.
func GoogleCallback(db *gorm.DB, conf *oauth2.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := c.Cookie(stateCookieName)
		if err != nil || state == "" || state != c.Query("state") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
			return
		}
		c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
			return
		}

		token, err := conf.Exchange(c.Request.Context(), code)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Code exchange failed", "details": err.Error()})
			return
		}

		resp, err := conf.Client(c.Request.Context(), token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Google profile"})
			return
		}
		defer resp.Body.Close()

		var profile struct {
			ID      string `json:"id"`
			Email   string `json:"email"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode Google profile"})
			return
		}

		var user models.User
		err = db.Where("google_id = ?", profile.ID).First(&user).Error
		if err != nil {
			user = models.User{
				GoogleID:       profile.ID,
				Email:          profile.Email,
				Name:           profile.Name,
				ProfilePicture: profile.Picture,
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else {
			// Keep the profile fresh on every login.
			user.Email = profile.Email
			user.Name = profile.Name
			user.ProfilePicture = profile.Picture
			db.Save(&user)
		}

		session, err := utils.CreateSessionToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.SetCookie(utils.SessionCookieName, session, int((7 * 24 * time.Hour).Seconds()), "/", "", false, true)

		frontend := os.Getenv("FRONTEND_URL")
		if frontend == "" {
			c.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
			return
		}
		c.Redirect(http.StatusFound, frontend)
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Logged out successfully"})
	}
}

// CurrentUser returns the logged-in user for the SPA bootstrap call.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var user models.User
		if err := db.Preload("Vendor").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
