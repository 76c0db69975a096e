package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Placeholder redirects to a generated stand-in image for products without
// photography yet.
func Placeholder(c *gin.Context) {
	width, errW := strconv.Atoi(c.Param("width"))
	height, errH := strconv.Atoi(c.Param("height"))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image dimensions"})
		return
	}

	url := fmt.Sprintf("https://via.placeholder.com/%dx%d/26732d/ffffff?text=Pet+Shop", width, height)
	c.Redirect(http.StatusFound, url)
}
