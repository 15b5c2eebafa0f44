package helper

import (
	"testing"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hkAllowed toàn bộ các cặp HK được phép chuyển; mọi cặp khác phải bị chặn
var hkAllowed = map[[2]string]bool{
	{"vd", "vc"}:  true,
	{"vc", "vd"}:  true,
	{"vc", "ip"}:  true,
	{"od", "oc"}:  true,
	{"od", "dnd"}: true,
	{"od", "nn"}:  true,
	{"oc", "od"}:  true,
	{"dnd", "nn"}: true,
	{"dnd", "oc"}: true,
	{"dnd", "od"}: true,
	{"nn", "dnd"}: true,
	{"nn", "oc"}:  true,
	{"nn", "od"}:  true,
	{"ip", "vc"}:  true,
}

func TestCheckTransitionHKFullTable(t *testing.T) {
	statuses := []string{"vd", "vc", "od", "oc", "dnd", "nn", "ip", "lock", "do"}

	for _, from := range statuses {
		for _, to := range statuses {
			err := CheckTransition(from, to, constants.DEPT_HK)
			if hkAllowed[[2]string{from, to}] {
				assert.NoError(t, err, "%s -> %s phải được phép", from, to)
			} else {
				assert.Error(t, err, "%s -> %s phải bị chặn", from, to)
			}
		}
	}
}

func TestCheckTransitionIgnoresArrSuffix(t *testing.T) {
	assert.NoError(t, CheckTransition("vd/arr", "vc/arr", constants.DEPT_HK))
	assert.NoError(t, CheckTransition("vd/arr", "vc", constants.DEPT_HK))
	assert.Error(t, CheckTransition("vd/arr", "oc", constants.DEPT_HK))
}

func TestCheckTransitionFOUnrestricted(t *testing.T) {
	assert.NoError(t, CheckTransition("lock", "oc", constants.DEPT_FO))
	assert.NoError(t, CheckTransition("vd", "do", constants.DEPT_FO))
}

func TestCheckTransitionNoRule(t *testing.T) {
	err := CheckTransition("lock", "vc", constants.DEPT_HK)
	require.Error(t, err)

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.True(t, terr.NoRule)
	assert.Equal(t, "lock", terr.From)
}

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		want      string
	}{
		{"giữ arr khi dọn xong", "vd/arr", "vc", "vc/arr"},
		{"arr tường minh trên đích", "vd", "vc/arr", "vc/arr"},
		{"arr rơi khi khách vào ở", "vc/arr", "ip", "ip"},
		{"arr rơi khi sang occupied", "vd/arr", "oc", "oc"},
		{"không arr thì giữ nguyên", "vd", "vc", "vc"},
		{"do nhận được arr", "vc", "do/arr", "do/arr"},
		{"arr không lan sang do từ current", "vc/arr", "do", "do"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(tt.current, tt.requested))
		})
	}
}
