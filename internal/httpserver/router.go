package httpserver

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	articlesvc "storefront/internal/service/article"
	cartsvc "storefront/internal/service/cart"
	catalogsvc "storefront/internal/service/catalog"
	favoritesvc "storefront/internal/service/favorite"
	ordersvc "storefront/internal/service/order"
	reactionsvc "storefront/internal/service/reaction"
	reviewsvc "storefront/internal/service/review"
	usersvc "storefront/internal/service/user"
)

// Deps carries the services the router dispatches to.
type Deps struct {
	UserSvc     *usersvc.Service
	CatalogSvc  *catalogsvc.Service
	CartSvc     *cartsvc.Service
	OrderSvc    *ordersvc.Service
	ReviewSvc   *reviewsvc.Service
	ReactionSvc *reactionsvc.Service
	ArticleSvc  *articlesvc.Service
	FavoriteSvc *favoritesvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if allowedOrigins == "" || allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = strings.Split(allowedOrigins, ",")
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	auth := &authHandlers{users: deps.UserSvc}
	catalog := &catalogHandlers{catalog: deps.CatalogSvc, reviews: deps.ReviewSvc, cart: deps.CartSvc}
	cart := &cartHandlers{cart: deps.CartSvc}
	orders := &orderHandlers{orders: deps.OrderSvc}
	reactions := &reactionHandlers{reactions: deps.ReactionSvc}
	articles := &articleHandlers{articles: deps.ArticleSvc}
	favorites := &favoriteHandlers{favorites: deps.FavoriteSvc}

	router.POST("/auth/register", auth.register)
	router.POST("/auth/login", auth.login)

	router.GET("/categories", catalog.listCategories)
	router.GET("/products", catalog.listProducts)
	router.GET("/products/:id", maybeAuthenticated(deps.UserSvc), catalog.getProduct)
	router.GET("/products/:id/reviews", catalog.listReviews)

	router.GET("/articles", articles.list)
	router.GET("/articles/:slug", articles.get)
	router.GET("/reactions/:kind/:id", maybeAuthenticated(deps.UserSvc), reactions.summary)

	authed := router.Group("/", authRequired(deps.UserSvc))
	{
		authed.POST("/auth/logout", auth.logout)
		authed.GET("/me", auth.profile)
		authed.PATCH("/me", auth.updateProfile)

		authed.GET("/cart", cart.get)
		authed.POST("/cart/items", cart.add)
		authed.DELETE("/cart/items/:id", cart.remove)
		authed.POST("/cart/items/:id/quantity", cart.adjustQuantity)
		authed.POST("/cart/toggle/:productId", cart.toggle)

		authed.POST("/orders", orders.place)
		authed.GET("/orders", orders.list)
		authed.GET("/orders/:id", orders.get)
		authed.PUT("/orders/:id/status", orders.setStatus)

		authed.POST("/products/:id/reviews", catalog.submitReview)
		authed.DELETE("/reviews/:id", catalog.deleteReview)

		authed.PUT("/reactions", reactions.react)
		authed.DELETE("/reactions", reactions.unreact)

		authed.POST("/articles", articles.create)
		authed.POST("/articles/:slug/comments", articles.addComment)
		authed.DELETE("/comments/:id", articles.deleteComment)

		authed.POST("/favorites/:productId", favorites.toggle)
		authed.GET("/favorites", favorites.list)

		authed.POST("/admin/products", catalog.saveProduct)
		authed.DELETE("/admin/products/:id", catalog.deleteProduct)
	}

	return router
}
