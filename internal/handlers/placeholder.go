package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

// maxPlaceholderDim bounds requested placeholder dimensions.
const maxPlaceholderDim = 2000

// placeholderFill matches the slate tone the frontend expects.
var placeholderFill = color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF}

// PlaceholderHandler serves generated placeholder images for galleries
// that have no uploads yet.
func PlaceholderHandler(c *gin.Context) {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil || width <= 0 || width > maxPlaceholderDim {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid placeholder dimensions"})
		return
	}
	height, err := strconv.Atoi(c.Param("height"))
	if err != nil || height <= 0 || height > maxPlaceholderDim {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid placeholder dimensions"})
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, placeholderFill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate placeholder",
			Message: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
