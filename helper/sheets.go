package helper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrSourceUnavailable không lấy được dữ liệu từ Google Sheets; sync phải
// dừng và giữ nguyên bảng phòng hiện có
var ErrSourceUnavailable = errors.New("không có dữ liệu từ Google Sheets")

// SheetValues payload trả về từ Sheets API values.get
type SheetValues struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// SheetsClient đọc read-only một dải ô từ Google Sheets qua API key
type SheetsClient struct {
	client        *resty.Client
	apiKey        string
	spreadsheetID string
	rangeName     string
}

func NewSheetsClient(apiKey, spreadsheetID, rangeName string) *SheetsClient {
	client := resty.New().
		SetBaseURL("https://sheets.googleapis.com").
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	return &SheetsClient{
		client:        client,
		apiKey:        apiKey,
		spreadsheetID: spreadsheetID,
		rangeName:     rangeName,
	}
}

// SetBaseURL đổi endpoint Sheets API (mặc định sheets.googleapis.com)
func (s *SheetsClient) SetBaseURL(url string) *SheetsClient {
	s.client.SetBaseURL(url)
	return s
}

// FetchValues tải dải ô đã cấu hình. Mọi trường hợp không có dữ liệu
// (lỗi mạng, HTTP khác 200, body không có values) đều trả về
// ErrSourceUnavailable.
func (s *SheetsClient) FetchValues(ctx context.Context) (*SheetValues, error) {
	var payload SheetValues

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetResult(&payload).
		// decode body là JSON kể cả khi Content-Type bị gắn nhãn sai
		ForceContentType("application/json").
		Get(fmt.Sprintf("/v4/spreadsheets/%s/values/%s", s.spreadsheetID, s.rangeName))

	if err != nil {
		logger.L.Error("lỗi khi lấy dữ liệu từ Google Sheets", zap.Error(err))
		return nil, ErrSourceUnavailable
	}
	if resp.StatusCode() != 200 {
		logger.L.Error("Google Sheets trả về mã lỗi",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("spreadsheet_id", s.spreadsheetID),
		)
		return nil, ErrSourceUnavailable
	}
	if len(payload.Values) == 0 {
		return nil, ErrSourceUnavailable
	}

	return &payload, nil
}
