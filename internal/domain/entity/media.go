package entity

import "time"

// MaxImages límite de imágenes por producto o bundle.
const MaxImages = 8

// Tipos de contenido de imagen permitidos.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Image es un objeto de valor embebido en Product/Bundle; no existe por sí solo.
type Image struct {
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	UploadDate  time.Time `json:"uploadDate,omitempty"`
}

// Valid verifica que la imagen tenga los tres campos y un content type permitido.
func (i Image) Valid() bool {
	return i.Filename != "" && i.URL != "" && allowedImageTypes[i.ContentType]
}

// Spec es un par nombre/valor descriptivo embebido en Product/Bundle.
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
