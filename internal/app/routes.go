package app

import (
	"github.com/gin-gonic/gin"

	"github.com/charliemarlow/APIProjects/internal/handlers"
)

func registerBlogRoutes(api *gin.RouterGroup, h *handlers.BlogHandler) {
	api.GET("/users", h.ListUsers)
	api.POST("/users", h.CreateUser)
	api.GET("/users/:userID", h.GetUser)
	api.PATCH("/users/:userID", h.UpdateUser)
	api.DELETE("/users/:userID", h.DeleteUser)

	api.GET("/users/:userID/socials", h.ListSocials)
	api.POST("/users/:userID/socials", h.CreateSocial)
	api.GET("/users/:userID/socials/:socialID", h.GetSocial)
	api.PATCH("/users/:userID/socials/:socialID", h.UpdateSocial)
	api.DELETE("/users/:userID/socials/:socialID", h.DeleteSocial)

	api.GET("/users/:userID/posts", h.ListPosts)
	api.POST("/users/:userID/posts", h.CreatePost)
	api.GET("/users/:userID/posts/:postID", h.GetPost)
	api.PATCH("/users/:userID/posts/:postID", h.UpdatePost)
	api.DELETE("/users/:userID/posts/:postID", h.DeletePost)

	api.GET("/users/:userID/posts/:postID/comments", h.ListComments)
	api.POST("/users/:userID/posts/:postID/comments", h.CreateComment)
	api.GET("/users/:userID/posts/:postID/comments/:commentID", h.GetComment)
	api.PATCH("/users/:userID/posts/:postID/comments/:commentID", h.UpdateComment)
	api.DELETE("/users/:userID/posts/:postID/comments/:commentID", h.DeleteComment)

	api.GET("/users/:userID/posts/:postID/likes", h.ListPostLikes)
	api.POST("/users/:userID/posts/:postID/likes", h.LikePost)
	api.GET("/users/:userID/posts/:postID/likes/:likeUserID", h.GetPostLike)
	api.DELETE("/users/:userID/posts/:postID/likes/:likeUserID", h.UnlikePost)

	api.GET("/users/:userID/posts/:postID/comments/:commentID/likes", h.ListCommentLikes)
	api.POST("/users/:userID/posts/:postID/comments/:commentID/likes", h.LikeComment)
	api.GET("/users/:userID/posts/:postID/comments/:commentID/likes/:likeUserID", h.GetCommentLike)
	api.DELETE("/users/:userID/posts/:postID/comments/:commentID/likes/:likeUserID", h.UnlikeComment)
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.GET("/todolists", h.SearchLists)
	api.POST("/todolists", h.CreateList)
	api.GET("/todolists/:listID", h.GetList)
	api.PUT("/todolists/:listID", h.ReplaceList)
	api.PATCH("/todolists/:listID", h.UpdateList)
	api.DELETE("/todolists/:listID", h.DeleteList)

	api.GET("/todolists/:listID/todoitems", h.ListItems)
	api.POST("/todolists/:listID/todoitems", h.CreateItem)
	api.GET("/todolists/:listID/todoitems/:itemID", h.GetItem)
	api.PUT("/todolists/:listID/todoitems/:itemID", h.ReplaceItem)
	api.PATCH("/todolists/:listID/todoitems/:itemID", h.UpdateItem)
	api.DELETE("/todolists/:listID/todoitems/:itemID", h.DeleteItem)
}
