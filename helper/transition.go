package helper

import (
	"fmt"
	"strings"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
)

// allowedTransitions các chuyển trạng thái HK được phép thực hiện.
// FO không bị giới hạn bởi bảng này. lock và do không có rule: HK không
// được đụng vào các phòng đó.
var allowedTransitions = map[string][]string{
	constants.STATUS_VD:  {constants.STATUS_VC},
	constants.STATUS_VC:  {constants.STATUS_VD, constants.STATUS_IP},
	constants.STATUS_OD:  {constants.STATUS_OC, constants.STATUS_DND, constants.STATUS_NN},
	constants.STATUS_OC:  {constants.STATUS_OD},
	constants.STATUS_DND: {constants.STATUS_NN, constants.STATUS_OC, constants.STATUS_OD},
	constants.STATUS_NN:  {constants.STATUS_DND, constants.STATUS_OC, constants.STATUS_OD},
	constants.STATUS_IP:  {constants.STATUS_VC},
}

// TransitionError chuyển trạng thái bị từ chối theo phân quyền bộ phận
type TransitionError struct {
	From string
	To   string
	// NoRule đúng khi trạng thái hiện tại không có rule nào (vd lock, do)
	NoRule bool
}

func (e *TransitionError) Error() string {
	if e.NoRule {
		return fmt.Sprintf(constants.TRANSITION_NO_RULE, e.From)
	}
	return fmt.Sprintf(constants.TRANSITION_FORBIDDEN, e.From, e.To)
}

// BaseStatus bỏ hậu tố /arr để lấy trạng thái cơ bản
func BaseStatus(status string) string {
	return strings.TrimSuffix(status, constants.ARR_SUFFIX)
}

// HasArr báo trạng thái có đang chờ khách đến không
func HasArr(status string) bool {
	return strings.HasSuffix(status, constants.ARR_SUFFIX)
}

func isVacant(base string) bool {
	return base == constants.STATUS_VD || base == constants.STATUS_VC
}

// CheckTransition kiểm tra phân quyền chuyển trạng thái theo bộ phận.
// FO được đặt trạng thái tùy ý; HK phải theo bảng allowedTransitions,
// so sánh trên trạng thái cơ bản (đã bỏ /arr).
func CheckTransition(current, requested, department string) error {
	if department != constants.DEPT_HK {
		return nil
	}

	currentBase := BaseStatus(current)
	requestedBase := BaseStatus(requested)

	allowed, ok := allowedTransitions[currentBase]
	if !ok {
		return &TransitionError{From: currentBase, To: requestedBase, NoRule: true}
	}

	for _, s := range allowed {
		if s == requestedBase {
			return nil
		}
	}
	return &TransitionError{From: currentBase, To: requestedBase}
}

// ResolveStatus tính trạng thái cuối cùng sau một chuyển đổi hợp lệ.
// /arr được giữ qua chuyển đổi khi đích còn hỗ trợ nó, ngược lại bị bỏ:
// phòng đang chờ khách (vd/arr) dọn xong vẫn phải chờ khách (vc/arr).
func ResolveStatus(current, requested string) string {
	base := BaseStatus(requested)

	if HasArr(requested) && (isVacant(base) || base == constants.STATUS_DO) {
		return base + constants.ARR_SUFFIX
	}
	if HasArr(current) && isVacant(base) {
		return base + constants.ARR_SUFFIX
	}
	return base
}
