package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// stripJSONExtension removes the .json extension from a route parameter
// if present; Stremio clients request both variants.
func stripJSONExtension(c *gin.Context, paramName string) {
	value := c.Param(paramName)
	if strings.HasSuffix(value, ".json") {
		for i, param := range c.Params {
			if param.Key == paramName {
				c.Params[i].Value = strings.TrimSuffix(value, ".json")
				break
			}
		}
	}
}
