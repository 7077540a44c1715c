package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessClassifyWaste = "waste image classified successfully"
	MessageFailedClassifyWaste  = "failed to classify waste image"

	ErrClassificationFailed = errors.New("classification produced no usable result")
)

type (
	ClassifyWasteRequest struct {
		Image *multipart.FileHeader `json:"-" form:"image" validate:"required"`
	}

	// ClassificationResult mirrors the JSON the vision model is asked
	// to return. Confidence is in [0, 1].
	ClassificationResult struct {
		WasteType  string  `json:"wasteType"`
		Quantity   string  `json:"quantity"`
		Confidence float64 `json:"confidence"`
	}
)
