package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/charliemarlow/APIProjects/internal/dto"
	"github.com/charliemarlow/APIProjects/internal/service"
)

// BlogHandler translates HTTP requests into blog service calls and
// service sentinels into status codes. No business rules live here.
type BlogHandler struct {
	svc *service.BlogService
}

// NewBlogHandler returns a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// ListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /users [get]
func (h *BlogHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Users())
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserRequest  true  "User body"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *BlogHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.AddUser(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GetUser godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  dto.UserResponse
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID} [get]
func (h *BlogHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	u, err := h.svc.FindUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUser godoc
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        body    body      dto.UpdateUserRequest  true  "Fields to change"
// @Success      200     {object}  dto.UserResponse
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID} [patch]
func (h *BlogHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.UpdateUser(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        userID  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID} [delete]
func (h *BlogHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(userID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSocials godoc
// @Summary      List a user's social media entries
// @Tags         socials
// @Produce      json
// @Param        userID  path     int  true  "User ID"
// @Success      200     {array}  dto.SocialMediaResponse
// @Failure      404     {object} map[string]string
// @Router       /users/{userID}/socials [get]
func (h *BlogHandler) ListSocials(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	socials, err := h.svc.Socials(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, socials)
}

// CreateSocial godoc
// @Summary      Add a social media entry
// @Tags         socials
// @Accept       json
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        body    body      dto.CreateSocialRequest  true  "Entry body"
// @Success      201     {object}  dto.SocialMediaResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/socials [post]
func (h *BlogHandler) CreateSocial(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	var req dto.CreateSocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.AddSocial(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GetSocial returns one social media entry.
// @Summary      Get a social media entry
// @Tags         socials
// @Produce      json
// @Param        userID    path      int  true  "User ID"
// @Param        socialID  path      int  true  "Entry ID"
// @Success      200       {object}  dto.SocialMediaResponse
// @Failure      404       {object}  map[string]string
// @Router       /users/{userID}/socials/{socialID} [get]
func (h *BlogHandler) GetSocial(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	socialID, ok := parseID(c, "socialID")
	if !ok {
		return
	}
	s, err := h.svc.FindSocial(userID, socialID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSocial partially updates one entry.
// @Summary      Update a social media entry
// @Tags         socials
// @Accept       json
// @Produce      json
// @Param        userID    path      int  true  "User ID"
// @Param        socialID  path      int  true  "Entry ID"
// @Param        body      body      dto.UpdateSocialRequest  true  "Fields to change"
// @Success      200       {object}  dto.SocialMediaResponse
// @Failure      404       {object}  map[string]string
// @Router       /users/{userID}/socials/{socialID} [patch]
func (h *BlogHandler) UpdateSocial(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	socialID, ok := parseID(c, "socialID")
	if !ok {
		return
	}
	var req dto.UpdateSocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.UpdateSocial(userID, socialID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteSocial removes one entry.
// @Summary      Delete a social media entry
// @Tags         socials
// @Param        userID    path  int  true  "User ID"
// @Param        socialID  path  int  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID}/socials/{socialID} [delete]
func (h *BlogHandler) DeleteSocial(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	socialID, ok := parseID(c, "socialID")
	if !ok {
		return
	}
	if err := h.svc.DeleteSocial(userID, socialID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        userID  path     int  true  "User ID"
// @Success      200     {array}  dto.PostResponse
// @Failure      404     {object} map[string]string
// @Router       /users/{userID}/posts [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	posts, err := h.svc.Posts(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        body    body      dto.CreatePostRequest  true  "Post body"
// @Success      201     {object}  dto.PostResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/posts [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.AddPost(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        postID  path      int  true  "Post ID"
// @Success      200     {object}  dto.PostResponse
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/posts/{postID} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	p, err := h.svc.FindPost(userID, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePost godoc
// @Summary      Partially update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        postID  path      int  true  "Post ID"
// @Param        body    body      dto.UpdatePostRequest  true  "Fields to change"
// @Success      200     {object}  dto.PostResponse
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/posts/{postID} [patch]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.UpdatePost(userID, postID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         posts
// @Param        userID  path  int  true  "User ID"
// @Param        postID  path  int  true  "Post ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID}/posts/{postID} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePost(userID, postID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListComments godoc
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        userID  path     int  true  "User ID"
// @Param        postID  path     int  true  "Post ID"
// @Success      200     {array}  dto.CommentResponse
// @Failure      404     {object} map[string]string
// @Router       /users/{userID}/posts/{postID}/comments [get]
func (h *BlogHandler) ListComments(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	comments, err := h.svc.Comments(userID, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        postID  path      int  true  "Post ID"
// @Param        body    body      dto.CreateCommentRequest  true  "Comment body"
// @Success      201     {object}  dto.CommentResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments [post]
func (h *BlogHandler) CreateComment(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := h.svc.AddComment(userID, postID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetComment godoc
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        userID     path      int  true  "User ID"
// @Param        postID     path      int  true  "Post ID"
// @Param        commentID  path      int  true  "Comment ID"
// @Success      200        {object}  dto.CommentResponse
// @Failure      404        {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID} [get]
func (h *BlogHandler) GetComment(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	comment, err := h.svc.FindComment(userID, postID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      Partially update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        userID     path      int  true  "User ID"
// @Param        postID     path      int  true  "Post ID"
// @Param        commentID  path      int  true  "Comment ID"
// @Param        body       body      dto.UpdateCommentRequest  true  "Fields to change"
// @Success      200        {object}  dto.CommentResponse
// @Failure      404        {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID} [patch]
func (h *BlogHandler) UpdateComment(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := h.svc.UpdateComment(userID, postID, commentID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Param        userID     path  int  true  "User ID"
// @Param        postID     path  int  true  "Post ID"
// @Param        commentID  path  int  true  "Comment ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID} [delete]
func (h *BlogHandler) DeleteComment(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(userID, postID, commentID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPostLikes godoc
// @Summary      List a post's likes
// @Tags         likes
// @Produce      json
// @Param        userID  path     int  true  "User ID"
// @Param        postID  path     int  true  "Post ID"
// @Success      200     {array}  dto.LikeResponse
// @Failure      404     {object} map[string]string
// @Router       /users/{userID}/posts/{postID}/likes [get]
func (h *BlogHandler) ListPostLikes(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	likes, err := h.svc.PostLikes(userID, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// LikePost godoc
// @Summary      Like a post
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Param        postID  path      int  true  "Post ID"
// @Param        body    body      dto.LikeRequest  true  "Liking user"
// @Success      201     {object}  dto.LikeResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/likes [post]
func (h *BlogHandler) LikePost(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	like, err := h.svc.AddPostLike(userID, postID, *req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

// GetPostLike godoc
// @Summary      Get one user's like on a post
// @Tags         likes
// @Produce      json
// @Param        userID      path      int  true  "User ID"
// @Param        postID      path      int  true  "Post ID"
// @Param        likeUserID  path      int  true  "Liking user ID"
// @Success      200         {object}  dto.LikeResponse
// @Failure      404         {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/likes/{likeUserID} [get]
func (h *BlogHandler) GetPostLike(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	likerID, ok := parseID(c, "likeUserID")
	if !ok {
		return
	}
	like, err := h.svc.FindPostLike(userID, postID, likerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, like)
}

// UnlikePost godoc
// @Summary      Remove one user's like from a post
// @Tags         likes
// @Param        userID      path  int  true  "User ID"
// @Param        postID      path  int  true  "Post ID"
// @Param        likeUserID  path  int  true  "Liking user ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/likes/{likeUserID} [delete]
func (h *BlogHandler) UnlikePost(c *gin.Context) {
	userID, postID, ok := parsePostPath(c)
	if !ok {
		return
	}
	likerID, ok := parseID(c, "likeUserID")
	if !ok {
		return
	}
	if err := h.svc.DeletePostLike(userID, postID, likerID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCommentLikes godoc
// @Summary      List a comment's likes
// @Tags         likes
// @Produce      json
// @Param        userID     path     int  true  "User ID"
// @Param        postID     path     int  true  "Post ID"
// @Param        commentID  path     int  true  "Comment ID"
// @Success      200        {array}  dto.LikeResponse
// @Failure      404        {object} map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID}/likes [get]
func (h *BlogHandler) ListCommentLikes(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	likes, err := h.svc.CommentLikes(userID, postID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// LikeComment godoc
// @Summary      Like a comment
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        userID     path      int  true  "User ID"
// @Param        postID     path      int  true  "Post ID"
// @Param        commentID  path      int  true  "Comment ID"
// @Param        body       body      dto.LikeRequest  true  "Liking user"
// @Success      201        {object}  dto.LikeResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID}/likes [post]
func (h *BlogHandler) LikeComment(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	like, err := h.svc.AddCommentLike(userID, postID, commentID, *req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

// GetCommentLike godoc
// @Summary      Get one user's like on a comment
// @Tags         likes
// @Produce      json
// @Param        userID      path      int  true  "User ID"
// @Param        postID      path      int  true  "Post ID"
// @Param        commentID   path      int  true  "Comment ID"
// @Param        likeUserID  path      int  true  "Liking user ID"
// @Success      200         {object}  dto.LikeResponse
// @Failure      404         {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID}/likes/{likeUserID} [get]
func (h *BlogHandler) GetCommentLike(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	likerID, ok := parseID(c, "likeUserID")
	if !ok {
		return
	}
	like, err := h.svc.FindCommentLike(userID, postID, commentID, likerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, like)
}

// UnlikeComment godoc
// @Summary      Remove one user's like from a comment
// @Tags         likes
// @Param        userID      path  int  true  "User ID"
// @Param        postID      path  int  true  "Post ID"
// @Param        commentID   path  int  true  "Comment ID"
// @Param        likeUserID  path  int  true  "Liking user ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{userID}/posts/{postID}/comments/{commentID}/likes/{likeUserID} [delete]
func (h *BlogHandler) UnlikeComment(c *gin.Context) {
	userID, postID, commentID, ok := parseCommentPath(c)
	if !ok {
		return
	}
	likerID, ok := parseID(c, "likeUserID")
	if !ok {
		return
	}
	if err := h.svc.DeleteCommentLike(userID, postID, commentID, likerID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parsePostPath(c *gin.Context) (userID, postID int64, ok bool) {
	userID, ok = parseID(c, "userID")
	if !ok {
		return 0, 0, false
	}
	postID, ok = parseID(c, "postID")
	if !ok {
		return 0, 0, false
	}
	return userID, postID, true
}

func parseCommentPath(c *gin.Context) (userID, postID, commentID int64, ok bool) {
	userID, postID, ok = parsePostPath(c)
	if !ok {
		return 0, 0, 0, false
	}
	commentID, ok = parseID(c, "commentID")
	if !ok {
		return 0, 0, 0, false
	}
	return userID, postID, commentID, true
}

// parseID accepts 0: ids are allocated from counters that start there.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrDuplicateLike),
		errors.Is(err, service.ErrEmptyField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
