package constants

// Department
const (
	DEPT_HK = "HK"
	DEPT_FO = "FO"
)

// Room status tokens
const (
	STATUS_VD   = "vd"
	STATUS_VC   = "vc"
	STATUS_OD   = "od"
	STATUS_OC   = "oc"
	STATUS_DND  = "dnd"
	STATUS_NN   = "nn"
	STATUS_LOCK = "lock"
	STATUS_IP   = "ip"
	STATUS_DO   = "do"

	ARR_SUFFIX = "/arr"
)

// Error messages
const (
	MISSING_LOGIN_INPUT    = "Vui lòng điền đầy đủ thông tin đăng nhập"
	INVALID_DEPARTMENT     = "Bộ phận không hợp lệ"
	INVALID_DEPT_CODE      = "Mã bộ phận không chính xác"
	ERROR_INTERNAL_ERROR   = "Lỗi hệ thống"
	MISSING_TOKEN          = "Thiếu token xác thực"
	INVALID_TOKEN          = "Token không hợp lệ"
	FO_ONLY                = "Chỉ Front Office mới được thực hiện chức năng này"
	HK_FO_ONLY             = "Chỉ House Keeping và Front Office mới được thực hiện chức năng này"
	MISSING_UPDATE_INPUT   = "Thiếu thông tin roomNo hoặc updatedData"
	MISSING_QUICK_INPUT    = "Thiếu thông tin roomNo hoặc newStatus"
	ROOM_NOT_FOUND         = "Không tìm thấy phòng %s"
	UPDATE_ROOM_FAILED     = "Không thể cập nhật phòng"
	REFRESH_FAILED         = "Không thể cập nhật dữ liệu từ Google Sheets"
	SYNC_ALREADY_RUNNING   = "Đang có một phiên đồng bộ khác chạy, vui lòng thử lại sau"
	TRANSITION_NO_RULE     = "Không được phép chuyển từ trạng thái %s"
	TRANSITION_FORBIDDEN   = "Không được phép chuyển từ %s sang %s"
	BACKUP_CREATE_FAILED   = "Không thể tạo bản sao lưu"
	BACKUP_FILE_MISSING    = "Thiếu tên file backup"
	BACKUP_FILE_NOT_FOUND  = "File backup không tồn tại"
	BACKUP_RESTORE_FAILED  = "Không thể khôi phục từ backup"
	CLEAR_REPORT_FAILED    = "Không thể xóa logs HK"
	GET_ROOMS_FAILED       = "Không thể tải dữ liệu phòng"
)

// Success messages
const (
	LOGIN_SUCCESS        = "Đăng nhập thành công"
	LOGOUT_SUCCESS       = "Đã đăng xuất"
	REFRESH_SUCCESS      = "Dữ liệu đã được cập nhật thành công từ Google Sheets"
	UPDATE_ROOM_SUCCESS  = "Phòng %s đã được cập nhật thành công"
	QUICK_UPDATE_SUCCESS = "Đã cập nhật phòng %s từ %s sang %s"
	BACKUP_CREATED       = "Đã tạo bản sao lưu thành công"
	BACKUP_RESTORED      = "Đã khôi phục thành công từ %s"
	REPORT_CLEARED       = "Đã xóa toàn bộ lịch sử báo cáo HK"
)
