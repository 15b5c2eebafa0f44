package helper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// sentinel mà sheet xuất ra cho ô ngày trống
const emptyDateSentinel = "00-01-00"

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
	regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2})`),
}

// pattern đảo YYYY-M-D (một số cột check-in trên sheet mới dùng dạng này)
var dateReversedPattern = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)

var nonDigitPattern = regexp.MustCompile(`[^\d]`)

// giữ chữ (kể cả tiếng Việt có dấu), số và khoảng trắng
var namePunctPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// ParseDate đưa ngày nhập tay về dạng chuẩn DD-MM-YY. Ngày không đọc được
// trả về chuỗi rỗng, không bao giờ trả về giá trị nửa vời.
func ParseDate(raw string) string {
	dateStr := strings.TrimSpace(raw)
	if dateStr == "" || dateStr == emptyDateSentinel {
		return ""
	}

	// YYYY-M-D phải thử trước, nếu không nhóm 4 số sẽ bị pattern
	// D-M-YY cắt đôi
	if m := dateReversedPattern.FindStringSubmatch(dateStr); m != nil {
		return formatDate(m[3], m[2], m[1])
	}

	for _, p := range datePatterns {
		if m := p.FindStringSubmatch(dateStr); m != nil {
			return formatDate(m[1], m[2], m[3])
		}
	}

	return ""
}

func formatDate(day, month, year string) string {
	if len(year) == 4 {
		year = year[2:]
	}
	return fmt.Sprintf("%s-%s-%s", zfill(day), zfill(month), zfill(year))
}

func zfill(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// ParsePax lấy số khách từ ô nhập tay kiểu "2 pax", "02", "2ng"...
func ParsePax(raw string) int {
	cleaned := nonDigitPattern.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	pax, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return pax
}

// CleanGuestName bỏ khoảng trắng thừa và ký tự lạ khỏi tên khách
func CleanGuestName(raw string) string {
	name := namePunctPattern.ReplaceAllString(raw, "")
	return strings.TrimSpace(name)
}
