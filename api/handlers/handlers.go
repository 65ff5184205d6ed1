package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-front/dto"
	"blog-front/services"
)

const maxPageSize = 100

// respondLoadError는 목록을 가져오지 못한 공개 화면 요청에 공통 응답을 보낸다.
func respondLoadError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
		return
	}
	c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: services.MsgLoadFailed})
}

// ListPostsHandler godoc
// @Summary      Explore posts
// @Description  Category filter, text search, sort and pagination over the full post collection
// @Tags         posts
// @Param        search     query  string  false  "Substring of title or text (case-insensitive)"
// @Param        category   query  string  false  "Exact story name"
// @Param        sort       query  string  false  "date | title | category"
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.ExploreDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ExploreInput
		in.Search = c.Query("search")
		in.Category = c.Query("category")
		in.Sort = c.DefaultQuery("sort", "date")
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(svc.PageSize())))
		if in.PageSize > maxPageSize {
			in.PageSize = maxPageSize
		}

		out, err := svc.Explore(c.Request.Context(), in)
		if err != nil {
			respondLoadError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  A single post with rendered body, SEO metadata and up to three related posts
// @Tags         posts
// @Param        id   path   string  true  "Post ID"
// @Produce      json
// @Success      200  {object}  dto.PostDetailDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondLoadError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// LandingHandler godoc
// @Summary      Landing page
// @Description  The most recent post and the five after it
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.LandingDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /landing [get]
func LandingHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Landing(c.Request.Context())
		if err != nil {
			respondLoadError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// StoryHandler godoc
// @Summary      Posts of one story
// @Description  Story name is matched case-insensitively; newest first
// @Tags         posts
// @Param        story  path  string  true  "Story name"
// @Produce      json
// @Success      200  {object}  dto.StoryDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /stories/{story} [get]
func StoryHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Story(c.Request.Context(), c.Param("story"))
		if err != nil {
			respondLoadError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// CategoryFiltersHandler godoc
// @Summary      Category filter options
// @Tags         filters
// @Produce      json
// @Success      200  {object}  dto.CategoryFilterDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /filters/categories [get]
func CategoryFiltersHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Categories(c.Request.Context())
		if err != nil {
			respondLoadError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
