package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nixie-tech-llc/courier/internal/cache"
	"github.com/nixie-tech-llc/courier/internal/db"
	"github.com/nixie-tech-llc/courier/internal/http/api"
	userapi "github.com/nixie-tech-llc/courier/internal/http/api/user/endpoints"
	"github.com/nixie-tech-llc/courier/internal/notify"
)

// RegisterRoutes sets up all application routes under /user
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, profiles *cache.Cache, notifier *notify.Notifier) {
	// CORS: any origin may call the API
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/user",
		Auth:   false,
	},
		userapi.AccountPublicModule(env.SecretKey, store, profiles),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/user",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		userapi.AccountSessionModule(env.SecretKey, store, profiles),
		userapi.MessageModule(store, notifier),
	)
}
