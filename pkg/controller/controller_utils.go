package controller

import (
	"strconv"

	"trainforum/pkg/model"

	"github.com/gin-gonic/gin"
)

func RetrievePagination(c *gin.Context) (page, limit int64) {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return
}

// RetrieveIdentity retrieves the identity of the user from the context.
// raise: Raise a http error when the identity doesn't exist.
func RetrieveIdentity(c *gin.Context, raise bool) (identity *model.Identity, exist bool) {
	id, exist := c.Get("identity")
	if !exist {
		if raise {
			c.AbortWithStatusJSON(401, model.Response{
				Msg: "Login Required",
			})
		}
		return nil, false
	}
	identity = id.(*model.Identity)
	return
}

func retrieveUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(400, model.Response{
			Msg: "Invalid " + name,
		})
		return 0, false
	}
	return uint(v), true
}
