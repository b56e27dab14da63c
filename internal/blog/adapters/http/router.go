// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"goblognest/internal/blog/adapters/http/blogs"
	"goblognest/internal/blog/adapters/http/categories"
	"goblognest/internal/blog/adapters/http/comments"
	"goblognest/internal/blog/adapters/http/likes"
	"goblognest/internal/blog/adapters/http/middleware"
	"goblognest/internal/blog/adapters/http/users"
	"goblognest/internal/blog/ports/api"
	"goblognest/internal/blog/ports/services"
)

// UseCases собирает входные порты, обслуживаемые маршрутизатором.
type UseCases struct {
	Users      api.UserUseCase
	Blogs      api.BlogUseCase
	Categories api.CategoryUseCase
	Comments   api.CommentUseCase
	Likes      api.LikeUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases, tokenSvc services.TokenService) {
	userHandler := users.NewHandler(useCases.Users)
	blogHandler := blogs.NewHandler(useCases.Blogs)
	categoryHandler := categories.NewHandler(useCases.Categories)
	commentHandler := comments.NewHandler(useCases.Comments)
	likeHandler := likes.NewHandler(useCases.Likes)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	authRequired := middleware.NewAuthMiddleware(tokenSvc)

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", userHandler.Register)
	authRoutes.Post("/login", userHandler.Login)

	// Пользователи.
	userRoutes := apiV1.Group("/users")
	userRoutes.Get("/", userHandler.GetUsers)
	userRoutes.Get("/:user_id", userHandler.GetUser)
	userRoutes.Patch("/:user_id/username", userHandler.UpdateUsername, authRequired)
	userRoutes.Patch("/:user_id/password", userHandler.UpdatePassword, authRequired)
	userRoutes.Delete("/:user_id", userHandler.DeleteUser, authRequired)

	// Публикации.
	blogRoutes := apiV1.Group("/blogs")
	blogRoutes.Get("/", blogHandler.GetBlogs)
	blogRoutes.Get("/:blog_id", blogHandler.GetBlog)
	blogRoutes.Post("/", blogHandler.CreateBlog, authRequired)
	blogRoutes.Put("/:blog_id", blogHandler.UpdateBlog, authRequired)
	blogRoutes.Delete("/:blog_id", blogHandler.DeleteBlog, authRequired)

	// Комментарии к публикации.
	blogRoutes.Get("/:blog_id/comments", commentHandler.GetComments)
	blogRoutes.Post("/:blog_id/comments", commentHandler.CreateComment, authRequired)
	apiV1.Delete("/comments/:comment_id", commentHandler.DeleteComment, authRequired)

	// Лайки.
	blogRoutes.Post("/:blog_id/likes", likeHandler.ToggleLike, authRequired)

	// Рубрики.
	categoryRoutes := apiV1.Group("/categories")
	categoryRoutes.Get("/", categoryHandler.GetCategories)
	categoryRoutes.Post("/", categoryHandler.CreateCategory, authRequired)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
