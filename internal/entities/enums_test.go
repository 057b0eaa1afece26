package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
)

func TestParseRoomType(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    entities.RoomType
		wantErr bool
	}{
		{name: "exact match", input: "SURGERY", want: entities.RoomTypeSurgery},
		{name: "lowercase", input: "exit", want: entities.RoomTypeExit},
		{name: "surrounding whitespace", input: "  waiting ", want: entities.RoomTypeWaiting},
		{name: "unknown type", input: "DUNGEON", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseRoomType(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    entities.Role
		wantErr bool
	}{
		{name: "exact match", input: "DOCTOR", want: entities.RoleDoctor},
		{name: "lowercase", input: "visitor", want: entities.RoleVisitor},
		{name: "surrounding whitespace", input: " nurse  ", want: entities.RoleNurse},
		{name: "unknown role", input: "WIZARD", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseRole(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
