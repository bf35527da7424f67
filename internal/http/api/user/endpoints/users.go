package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nixie-tech-llc/courier/internal/cache"
	"github.com/nixie-tech-llc/courier/internal/db"
	"github.com/nixie-tech-llc/courier/internal/http/api"
	"github.com/nixie-tech-llc/courier/internal/http/api/user/packets"
	"github.com/nixie-tech-llc/courier/internal/http/middleware"
)

// AccountPublicModule mounts the unauthenticated account endpoints
// (/signup, /login, /all, /:id).
func AccountPublicModule(jwtSecret string, store db.Store, profiles *cache.Cache) api.Module {
	ctl := newAccountManager(jwtSecret, store, profiles)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/signup", ctl.userSignup)
		c.PUBLIC_POST("/login", ctl.userLogin)
		c.PUBLIC_GET("/all", ctl.listUsers)
		c.PUBLIC_GET("/:id", ctl.getProfile)
	})
}

// AccountSessionModule mounts profile endpoints on the logged-in user
// (JWT required).
func AccountSessionModule(jwtSecret string, store db.Store, profiles *cache.Cache) api.Module {
	ctl := newAccountManager(jwtSecret, store, profiles)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUT("/", ctl.updateProfile)
		c.DELETE("/", ctl.deleteAccount)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
	profiles  *cache.Cache
}

func newAccountManager(secret string, store db.Store, profiles *cache.Cache) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store, profiles: profiles}
}

// POST /user/signup
func (a *AccountManager) userSignup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if existing, _ := a.store.GetUserByEmail(request.Email); existing != nil {
		log.Warn().Str("email", request.Email).Msg("signup email already registered")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	newUser, err := a.store.CreateUser(request.Name, request.Email, hashed)
	if err != nil {
		// the unique constraint closes the window between the check above
		// and the insert
		if errors.Is(err, db.ErrEmailTaken) {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create user"}
	}

	token, err := middleware.GenerateJWT(newUser.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"newUser": packets.NewUserResponse(newUser), "token": token}, nil
}

// POST /user/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	foundUser, err := a.store.GetUserByEmail(request.Email)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid email or password"}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"user": packets.NewUserResponse(foundUser), "token": token}, nil
}

// GET /user/all
func (a *AccountManager) listUsers(ctx *gin.Context) (any, *api.APIError) {
	users, err := a.store.ListUsers()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list users"}
	}

	out := make([]packets.UserResponse, len(users))
	for i := range users {
		out[i] = packets.NewUserResponse(&users[i])
	}
	return gin.H{"users": out}, nil
}

// GET /user/:id
func (a *AccountManager) getProfile(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid user id"}
	}

	if name, ok := a.profiles.GetProfileName(ctx.Request.Context(), id); ok {
		return gin.H{"user": packets.ProfileResponse{Name: name}}, nil
	}

	user, err := a.store.GetUserByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "user not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch user"}
	}

	a.profiles.SetProfileName(ctx.Request.Context(), id, user.Name)
	return gin.H{"user": packets.ProfileResponse{Name: user.Name}}, nil
}

// PUT /user/
func (a *AccountManager) updateProfile(ctx *gin.Context, userID int) (any, *api.APIError) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	// the token can outlive the account, so the row may already be gone
	updated, err := a.store.UpdateUserName(userID, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}

	a.profiles.InvalidateProfile(ctx.Request.Context(), userID)
	return gin.H{"update": updated}, nil
}

// DELETE /user/
func (a *AccountManager) deleteAccount(ctx *gin.Context, userID int) (any, *api.APIError) {
	deleted, err := a.store.DeleteUser(userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete account"}
	}

	a.profiles.InvalidateProfile(ctx.Request.Context(), userID)
	return gin.H{"deleted": deleted}, nil
}
