// Package assistant formats currently visible case data into a prompt
// context and forwards it, with the user's question, to an external
// text-generation call. It keeps no state beyond the current turn, and it
// degrades to fixed Vietnamese notices instead of returning errors, since a
// broken AI panel must never block the dashboard.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	systemInstruction = "Bạn là một trợ lý pháp lý ảo chuyên nghiệp cho hệ thống toà án Việt Nam. " +
		"Nhiệm vụ của bạn là hỗ trợ cán bộ toà án tóm tắt vụ án, tra cứu luật, hoặc phân tích dữ liệu vụ án được cung cấp. " +
		"Trả lời ngắn gọn, chính xác, sử dụng thuật ngữ pháp lý phù hợp."

	missingKeyNotice = "Vui lòng cấu hình API Key để sử dụng tính năng AI."
	failureNotice    = "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại sau."
	emptyNotice      = "Không thể tạo câu trả lời."
)

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// New builds a client; a missing key yields a client that only ever answers
// with the configuration notice.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateLegalAnalysis answers a user query grounded in the supplied
// context string. It never returns an error; failures come back as fixed
// notices the chat panel can render directly.
func (c *Client) GenerateLegalAnalysis(ctx context.Context, query, contextData string) string {
	if c.APIKey == "" {
		return missingKeyNotice
	}

	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf("Dữ liệu hiện tại: %s\n\nCâu hỏi của người dùng: %s", contextData, query)}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		zap.S().Errorw("failed to marshal assistant request", "error", err)
		return failureNotice
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		zap.S().Errorw("failed to build assistant request", "error", err)
		return failureNotice
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		zap.S().Errorw("assistant call failed", "error", err)
		return failureNotice
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.S().Errorw("assistant call returned non-200", "status", resp.StatusCode)
		return failureNotice
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		zap.S().Errorw("failed to decode assistant response", "error", err)
		return failureNotice
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return emptyNotice
	}
	answer := out.Candidates[0].Content.Parts[0].Text
	if answer == "" {
		return emptyNotice
	}
	return answer
}

// BuildCaseContext renders the data currently on screen into the context
// string the prompt carries. A selected detail wins over the list view.
func BuildCaseContext(cases []models.Case, groups []models.CaseGroup, detail *models.CaseDetail) string {
	if detail != nil {
		return fmt.Sprintf("Đang xem chi tiết vụ án: %s. Số thụ lý: %s. Trạng thái: %s. Sự kiện tiếp theo: %s vào ngày %s.",
			detail.Title, detail.CaseNumber, detail.Status, detail.NextEventDescription, detail.NextEventDate)
	}

	caseParts := make([]string, 0, len(cases))
	for _, c := range cases {
		caseParts = append(caseParts, fmt.Sprintf("Vụ án: %s (%s) - %s", c.Title, c.Status, c.Court))
	}
	groupParts := make([]string, 0, len(groups))
	for _, g := range groups {
		groupParts = append(groupParts, fmt.Sprintf("Nhóm vụ án: %s (%d vụ)", g.Name, g.CaseCount))
	}
	return fmt.Sprintf("Danh sách vụ án đang hiển thị: %s. %s",
		strings.Join(caseParts, "; "), strings.Join(groupParts, "; "))
}
