package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Success(c *gin.Context) {
	c.JSON(200, SuccessResponse{Success: true})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
