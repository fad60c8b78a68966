package app

import (
	"github.com/chiragnagar2708/Outfitz-backend/internal/auth"
	"github.com/chiragnagar2708/Outfitz-backend/internal/cache"
	"github.com/chiragnagar2708/Outfitz-backend/internal/config"
	"github.com/chiragnagar2708/Outfitz-backend/internal/handlers"
	"github.com/chiragnagar2708/Outfitz-backend/internal/payment"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"
	"github.com/chiragnagar2708/Outfitz-backend/internal/service"
	"github.com/chiragnagar2708/Outfitz-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. Route paths are root-level
// and spelled exactly as the previous backend exposed them; the storefront
// is not versioned.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, uploader storage.Uploader, payments payment.Client) {
	r.GET("/", rootHandler())
	r.GET("/health", healthHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	tokens := auth.NewTokenService(cfg.Auth.Secret)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	productRepo := repo.NewPGProductRepo(db)
	productCache := cache.NewProductCache(rdb, cfg.Redis.DefaultTTL.Duration())
	catalogSvc := service.NewCatalogService(productRepo, productCache)
	productHandler := handlers.NewProductHandler(catalogSvc, uploader)
	r.POST("/addproduct", productHandler.Add)
	r.POST("/removeproduct", productHandler.Remove)
	r.GET("/allproducts", productHandler.All)
	r.GET("/newcollections", productHandler.NewCollections)
	r.GET("/relatedProducts", productHandler.Related)
	r.GET("/popularinwomen", productHandler.PopularInWomen)

	cartSvc := service.NewCartService(userRepo)
	cartHandler := handlers.NewCartHandler(cartSvc)
	protected := r.Group("", auth.RequireToken(tokens))
	protected.POST("/addtocart", cartHandler.Add)
	protected.POST("/removefromcart", cartHandler.Remove)
	protected.POST("/getcart", cartHandler.Get)
	protected.POST("/clear-cart", cartHandler.Clear)

	checkoutHandler := handlers.NewCheckoutHandler(payments)
	r.POST("/create-checkout-session", checkoutHandler.CreateSession)
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(200, "Outfitz API is running")
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env, "version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
