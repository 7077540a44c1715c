package classify

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const classifyPrompt = "You are an expert in waste management. Analyze this image and respond ONLY with a valid JSON object containing exactly these fields: 'wasteType' (string), 'quantity' (string, amount in kg or L), and 'confidence' (number between 0 and 1). Do not include any explanations, markdown formatting, or extra text."

type (
	ClassifyService interface {
		ClassifyWaste(ctx context.Context, imageFile *multipart.FileHeader) (*domain.ClassificationResult, error)
	}

	classifyService struct {
		httpClient *http.Client
	}
)

func NewClassifyService() ClassifyService {
	return &classifyService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *classifyService) ClassifyWaste(ctx context.Context, imageFile *multipart.FileHeader) (*domain.ClassificationResult, error) {
	file, err := imageFile.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	base64Image := base64.StdEncoding.EncodeToString(fileData)

	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"

		ext := strings.ToLower(filepath.Ext(imageFile.Filename))
		switch ext {
		case ".png":
			mimeType = "image/png"
		case ".jpg", ".jpeg":
			mimeType = "image/jpeg"
		case ".gif":
			mimeType = "image/gif"
		case ".webp":
			mimeType = "image/webp"
		}
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": classifyPrompt,
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrClassificationFailed
	}

	return ParseClassification(geminiResp.Candidates[0].Content.Parts[0].Text)
}

// ParseClassification extracts the result object from the model's raw
// text, tolerating markdown fences and surrounding prose.
func ParseClassification(responseText string) (*domain.ClassificationResult, error) {
	jsonPattern := regexp.MustCompile(`(?s)\{.*\}`)
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	responseText = strings.TrimSpace(responseText)

	var result domain.ClassificationResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, domain.ErrClassificationFailed
	}

	// A submission must not proceed without a complete classification.
	if result.WasteType == "" || result.Quantity == "" || result.Confidence <= 0 || result.Confidence > 1 {
		return nil, domain.ErrClassificationFailed
	}

	return &result, nil
}
