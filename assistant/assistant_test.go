package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legaldesk/legal-case-api/assistant"
	"github.com/legaldesk/legal-case-api/models"
)

func TestGenerateLegalAnalysisMissingKey(t *testing.T) {
	c := assistant.New("")
	answer := c.GenerateLegalAnalysis(context.Background(), "Tóm tắt vụ án", "dữ liệu")
	assert.Equal(t, "Vui lòng cấu hình API Key để sử dụng tính năng AI.", answer)
}

func TestGenerateLegalAnalysis(t *testing.T) {
	var gotPath string
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "system_instruction")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Vụ án đang ở giai đoạn sơ thẩm."}]}}]}`))
	}))
	defer srv.Close()

	c := assistant.New("test-key")
	c.BaseURL = srv.URL

	answer := c.GenerateLegalAnalysis(context.Background(), "Giai đoạn nào?", "dữ liệu vụ án")
	assert.Equal(t, "Vụ án đang ở giai đoạn sơ thẩm.", answer)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestGenerateLegalAnalysisServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := assistant.New("test-key")
	c.BaseURL = srv.URL

	answer := c.GenerateLegalAnalysis(context.Background(), "câu hỏi", "dữ liệu")
	assert.Equal(t, "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại sau.", answer)
}

func TestGenerateLegalAnalysisEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := assistant.New("test-key")
	c.BaseURL = srv.URL

	answer := c.GenerateLegalAnalysis(context.Background(), "câu hỏi", "dữ liệu")
	assert.Equal(t, "Không thể tạo câu trả lời.", answer)
}

func TestBuildCaseContextDetailWins(t *testing.T) {
	detail := &models.CaseDetail{
		Case: models.Case{
			ID:         "CASE_1",
			Title:      "Tranh chấp đất đai",
			CaseNumber: "146/2022/TLST-DS",
			Status:     models.StatusPending,
		},
		NextEventDescription: "Phiên hòa giải",
		NextEventDate:        "07/11/2025",
	}

	got := assistant.BuildCaseContext([]models.Case{{Title: "bị bỏ qua"}}, nil, detail)
	assert.Contains(t, got, "Đang xem chi tiết vụ án: Tranh chấp đất đai")
	assert.Contains(t, got, "146/2022/TLST-DS")
	assert.Contains(t, got, "Phiên hòa giải")
	assert.NotContains(t, got, "bị bỏ qua")
}

func TestBuildCaseContextListView(t *testing.T) {
	cases := []models.Case{
		{Title: "Vụ án A", Status: models.StatusPending, Court: "TAND tỉnh Lâm Đồng"},
		{Title: "Vụ án B", Status: models.StatusCompleted, Court: "TAND Khu vực 1"},
	}
	groups := []models.CaseGroup{{Name: "Nhóm Hồ Xuân Hương", CaseCount: 5}}

	got := assistant.BuildCaseContext(cases, groups, nil)
	assert.Contains(t, got, "Vụ án A")
	assert.Contains(t, got, "Vụ án B")
	assert.Contains(t, got, "Nhóm Hồ Xuân Hương (5 vụ)")
}
