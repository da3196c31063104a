package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shelfscan/internal/gateway"
	"shelfscan/internal/handler/api"
	"shelfscan/internal/handler/middleware"
	"shelfscan/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	hub *gateway.Hub,
	cardHandler *api.CardHandler,
	clientHandler *api.ClientHandler,
	bookHandler *api.BookHandler,
	borrowHandler *api.BorrowHandler,
	rfidHandler *api.RfidHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, hub, cardHandler, clientHandler, bookHandler, borrowHandler, rfidHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	hub *gateway.Hub,
	cardHandler *api.CardHandler,
	clientHandler *api.ClientHandler,
	bookHandler *api.BookHandler,
	borrowHandler *api.BorrowHandler,
	rfidHandler *api.RfidHandler,
) {
	engine.GET("/health", healthCheck(hub))
	engine.GET("/ws", gin.WrapF(hub.ServeWS))

	apiGroup := engine.Group("/api")
	{
		cards := apiGroup.Group("/cards")
		addRoutes(cards, []route{
			{Method: http.MethodGet, Path: "", Handler: cardHandler.List},
			{Method: http.MethodGet, Path: "/:uid", Handler: cardHandler.Get},
			{Method: http.MethodPost, Path: "", Handler: cardHandler.Create},
			{Method: http.MethodDelete, Path: "/:uid", Handler: cardHandler.Delete},
		})

		clients := apiGroup.Group("/clients")
		addRoutes(clients, []route{
			{Method: http.MethodGet, Path: "", Handler: clientHandler.List},
			{Method: http.MethodGet, Path: "/:cardUid", Handler: clientHandler.Get},
			{Method: http.MethodPatch, Path: "/:cardUid", Handler: clientHandler.Update},
			{Method: http.MethodDelete, Path: "/:cardUid", Handler: clientHandler.Delete},
		})

		books := apiGroup.Group("/books")
		addRoutes(books, []route{
			{Method: http.MethodGet, Path: "", Handler: bookHandler.List},
			{Method: http.MethodGet, Path: "/:cardUid", Handler: bookHandler.Get},
			{Method: http.MethodPatch, Path: "/:cardUid", Handler: bookHandler.Update},
			{Method: http.MethodDelete, Path: "/:cardUid", Handler: bookHandler.Delete},
		})

		borrows := apiGroup.Group("/borrows")
		addRoutes(borrows, []route{
			{Method: http.MethodPost, Path: "", Handler: borrowHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: borrowHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: borrowHandler.Get},
			{Method: http.MethodPost, Path: "/:id/return", Handler: borrowHandler.Return},
			{Method: http.MethodGet, Path: "/client/:cardUid", Handler: borrowHandler.ListByClient},
			{Method: http.MethodGet, Path: "/book/:cardUid", Handler: borrowHandler.ListByBook},
		})

		rfidGroup := apiGroup.Group("/rfid")
		addRoutes(rfidGroup, []route{
			{Method: http.MethodPost, Path: "/register-client", Handler: rfidHandler.RegisterClient},
			{Method: http.MethodPost, Path: "/register-book", Handler: rfidHandler.RegisterBook},
			{Method: http.MethodPost, Path: "/scan-client", Handler: rfidHandler.Scan},
			{Method: http.MethodPost, Path: "/scan-book", Handler: rfidHandler.Scan},
			{Method: http.MethodPost, Path: "/register-request", Handler: rfidHandler.RegisterRequest},
			{Method: http.MethodPost, Path: "/register-book-request", Handler: rfidHandler.RegisterBookRequest},
			{Method: http.MethodPost, Path: "/return", Handler: rfidHandler.Return},
			{Method: http.MethodPost, Path: "/cancel-scan", Handler: rfidHandler.CancelScan},
		})
	}
}

func healthCheck(hub *gateway.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uiClients": hub.ClientCount(),
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
