package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/internal/user"
	"github.com/pickuphub/backend/pkg/responses"
	"github.com/pickuphub/backend/pkg/token"
	"github.com/pickuphub/backend/pkg/validator"
	"github.com/pickuphub/backend/utils"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs ---

type CredentialsRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"p1"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type RegisteredUserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new account with a unique username and a bcrypt-hashed password.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        credentials  body  CredentialsRequest  true  "Username and password"
// @Success      201  {object}  map[string]interface{} "User registered successfully"
// @Failure      400  {object}  responses.ErrorResponse "Missing username or password"
// @Failure      409  {object}  responses.ErrorResponse "Username already exists"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /users/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("register validation failed: %v", validator.ParseError(err))
		responses.SendError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Explicit pre-check; the unique index on username backstops the race.
	if _, err := ac.repo.GetUserByUsername(req.Username); err == nil {
		responses.SendError(c, http.StatusConflict, "Username already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("register lookup error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred during registration")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("register hash error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred during registration")
		return
	}

	u := user.User{
		Username: req.Username,
		Password: hashed,
	}
	if err := ac.repo.CreateUser(&u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race between the pre-check and the insert.
			responses.SendError(c, http.StatusConflict, "Username already exists")
			return
		}
		log.Printf("register insert error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred during registration")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": RegisteredUserResponse{
			ID:        u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		},
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and sets the HTTP-only session cookie.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        credentials  body  CredentialsRequest  true  "Username and password"
// @Success      200  {object}  map[string]interface{} "Login successful"
// @Failure      400  {object}  responses.ErrorResponse "Missing username or password"
// @Failure      401  {object}  responses.ErrorResponse "Invalid credentials"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /users/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	u, err := ac.repo.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown user and wrong password are indistinguishable.
			responses.SendError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login lookup error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred during login")
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sessionToken, err := token.GenerateJWT(u.ID, u.Username, ac.config.JWT.Secret, ac.config.JWT.SessionTTLHours)
	if err != nil {
		log.Printf("login token error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred during login")
		return
	}

	ac.setSessionCookie(c, sessionToken)

	responses.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user": UserResponse{
			ID:       u.ID,
			Username: u.Username,
		},
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie. Advisory only: an already-captured token stays valid until its natural expiry.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Logout successful"
// @Router       /users/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.clearSessionCookie(c)
	responses.SendMessage(c, http.StatusOK, "Logout successful")
}

// LogoutRedirect clears the session cookie and redirects home. Kept for
// plain logout links that cannot POST.
func (ac *AuthController) LogoutRedirect(c *gin.Context) {
	ac.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// Profile godoc
// @Summary      Current user's profile
// @Description  Returns the identity carried by the verified session token. No store read.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Router       /users/profile [get]
func (ac *AuthController) Profile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username, err := middleware.GetUsernameFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{
		"user": UserResponse{
			ID:       userID,
			Username: username,
		},
	})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, sessionToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		sessionToken,
		ac.config.JWT.SessionTTLHours*3600,
		"/",
		"",
		ac.config.App.Env == "production",
		true,
	)
}

func (ac *AuthController) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ac.config.App.Env == "production", true)
}
