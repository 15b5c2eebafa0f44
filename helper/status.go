package helper

import (
	"strings"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
)

var statusMapping = map[string]string{
	"VD": constants.STATUS_VD, "OD": constants.STATUS_OD,
	"VC": constants.STATUS_VC, "OC": constants.STATUS_OC,
	"DND": constants.STATUS_DND, "NN": constants.STATUS_NN,
	"LOCK": constants.STATUS_LOCK, "IP": constants.STATUS_IP,
	"DO": constants.STATUS_DO,
}

// thứ tự ưu tiên khi status trên sheet không khớp chính xác token nào
var statusContains = []struct {
	needles []string
	result  string
}{
	{[]string{"VD", "ARR"}, "vd/arr"},
	{[]string{"VC", "ARR"}, "vc/arr"},
	{[]string{"DO", "ARR"}, "do/arr"},
	{[]string{"VD"}, constants.STATUS_VD},
	{[]string{"VC"}, constants.STATUS_VC},
	{[]string{"DO"}, constants.STATUS_DO},
	{[]string{"OD"}, constants.STATUS_OD},
	{[]string{"OC"}, constants.STATUS_OC},
	{[]string{"IP"}, constants.STATUS_IP},
}

// CleanRoomStatus chuẩn hoá trạng thái phòng nhập tay trên sheet.
// Ô trống trả về fallback; mã lạ nhưng ổn định được giữ nguyên ở dạng
// chữ thường thay vì báo lỗi.
func CleanRoomStatus(raw string, fallback string) string {
	status := strings.ToUpper(strings.TrimSpace(raw))
	if status == "" {
		return fallback
	}

	if v, ok := statusMapping[status]; ok {
		return v
	}

	for _, c := range statusContains {
		matched := true
		for _, n := range c.needles {
			if !strings.Contains(status, n) {
				matched = false
				break
			}
		}
		if matched {
			return c.result
		}
	}

	return strings.ToLower(status)
}
