package routers

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/handlers"
	"Frontend/middleware"
	"Frontend/storage"
	"Frontend/web"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

func SetupRouters(cl *client.Client, configs *storage.ConfigStore, b *board.Board) *gin.Engine {
	sess := cl.Session()

	//建立Gin路由器
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	})
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil
	}

	//操作頁面與靜態資源
	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.StaticFS())

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Use(middleware.SessionMiddleware(sess))
	{
		router.GET("/", func(context *gin.Context) {
			handlers.IndexHandler(context, configs, sess, b)
		})

		api := router.Group("/api")
		//目前狀態
		api.GET("/state", func(context *gin.Context) {
			handlers.StateHandler(context, configs, sess, b)
		})
		//Base URL設定
		api.GET("/config", func(context *gin.Context) {
			handlers.GetConfigHandler(context, configs)
		})
		api.POST("/config", func(context *gin.Context) {
			handlers.SaveConfigHandler(context, configs, b)
		})

		//註冊與登入
		api.POST("/auth/register", func(context *gin.Context) {
			handlers.RegisterHandler(context, cl, configs, b)
		})
		api.POST("/auth/login", func(context *gin.Context) {
			handlers.LoginHandler(context, cl, configs, b)
		})
		//Token
		api.GET("/session", func(context *gin.Context) {
			handlers.SessionHandler(context, sess)
		})
		api.POST("/session/clear", func(context *gin.Context) {
			handlers.ClearSessionHandler(context, sess, b)
		})

		//商品
		api.POST("/products/create", func(context *gin.Context) {
			handlers.CreateProductHandler(context, cl, configs, b)
		})
		api.POST("/products/list", func(context *gin.Context) {
			handlers.ListProductsHandler(context, cl, configs, b)
		})
		api.POST("/products/get", func(context *gin.Context) {
			handlers.GetProductHandler(context, cl, configs, b)
		})

		//訂單
		api.POST("/orders/create", func(context *gin.Context) {
			handlers.CreateOrderHandler(context, cl, configs, b)
		})
		api.POST("/orders/get", func(context *gin.Context) {
			handlers.GetOrderHandler(context, cl, configs, b)
		})
		api.POST("/orders/user", func(context *gin.Context) {
			handlers.ListUserOrdersHandler(context, cl, configs, b)
		})

		//服務健康檢查
		api.POST("/health/:service", func(context *gin.Context) {
			handlers.HealthHandler(context, cl, configs, b)
		})

		////需要持有Token
		loginRequired := api.Group("/auth")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			loginRequired.POST("/verify", func(context *gin.Context) {
				handlers.VerifyHandler(context, cl, configs, b)
			})
		}
	}

	return router
}
