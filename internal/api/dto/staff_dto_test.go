package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/enquiry-service/internal/repository"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func requireInvalidArgument(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	apiErr := util.ToAPIError(err)
	require.Equal(t, util.StatusInvalidArgument, apiErr.StatusCode)
	require.Equal(t, 400, apiErr.HTTPStatus)
	require.Equal(t, message, apiErr.Message)
}

func TestCreateStaffRequestValidate(t *testing.T) {
	valid := CreateStaffRequest{Email: "ops@example.com", RoleID: 1, Password: "secret-pw"}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name    string
		mutate  func(*CreateStaffRequest)
		message string
	}{
		{"missing email", func(r *CreateStaffRequest) { r.Email = "" }, "email is required"},
		{"overlong email", func(r *CreateStaffRequest) { r.Email = strings.Repeat("a", 250) + "@example.com" }, "email must be less than 255 characters"},
		{"bad email", func(r *CreateStaffRequest) { r.Email = "not-an-email" }, "Invalid email format"},
		{"empty name", func(r *CreateStaffRequest) { r.Name = strptr("") }, "name must be at least 1 character"},
		{"overlong name", func(r *CreateStaffRequest) { r.Name = strptr(strings.Repeat("n", 101)) }, "name must be less than 100 characters"},
		{"zero role", func(r *CreateStaffRequest) { r.RoleID = 0 }, "roleId must be a positive number"},
		{"unknown role", func(r *CreateStaffRequest) { r.RoleID = 3 }, "roleId must be a known role"},
		{"short password", func(r *CreateStaffRequest) { r.Password = "12345" }, "password must be at least 6 characters"},
		{"overlong password", func(r *CreateStaffRequest) { r.Password = strings.Repeat("p", 256) }, "password must be less than 255 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			requireInvalidArgument(t, req.Validate(), tc.message)
		})
	}
}

// Validation is fail-fast: with several violations only the first in field
// order is reported.
func TestCreateStaffRequestValidateReportsFirstViolation(t *testing.T) {
	req := CreateStaffRequest{Email: "", RoleID: 0, Password: ""}
	requireInvalidArgument(t, req.Validate(), "email is required")
}

func TestListStaffRequestValidate(t *testing.T) {
	require.NoError(t, ListStaffRequest{}.Validate())
	require.NoError(t, ListStaffRequest{ListQuery{Limit: intptr(100), Offset: intptr(0)}}.Validate())

	requireInvalidArgument(t,
		ListStaffRequest{ListQuery{Limit: intptr(0)}}.Validate(),
		"limit must be at least 1")
	requireInvalidArgument(t,
		ListStaffRequest{ListQuery{Limit: intptr(101)}}.Validate(),
		"limit must be at most 100")
	requireInvalidArgument(t,
		ListStaffRequest{ListQuery{Offset: intptr(-1)}}.Validate(),
		"offset must be at least 0")
	requireInvalidArgument(t,
		ListStaffRequest{ListQuery{OrderBy: &repository.OrderBy{Field: "phone", Direction: "asc"}}}.Validate(),
		"orderBy must be one of id, email, name, createdAt, updatedAt")
	requireInvalidArgument(t,
		ListStaffRequest{ListQuery{OrderBy: &repository.OrderBy{Field: "email", Direction: "upwards"}}}.Validate(),
		"orderDirection must be asc or desc")
}

func TestUpdateStaffRequestValidate(t *testing.T) {
	require.NoError(t, UpdateStaffRequest{ID: 1}.Validate())
	require.NoError(t, UpdateStaffRequest{ID: 1, Email: strptr("new@example.com"), RoleID: intptr(2)}.Validate())

	requireInvalidArgument(t, UpdateStaffRequest{ID: 0}.Validate(), "id must be a positive integer")
	requireInvalidArgument(t, UpdateStaffRequest{ID: 1, Email: strptr("nope")}.Validate(), "Invalid email format")
	requireInvalidArgument(t, UpdateStaffRequest{ID: 1, RoleID: intptr(7)}.Validate(), "roleId must be a known role")
}

func TestChangePasswordRequestValidate(t *testing.T) {
	require.NoError(t, ChangePasswordRequest{OldPassword: "oldpass", NewPassword: "newpass"}.Validate())

	requireInvalidArgument(t,
		ChangePasswordRequest{OldPassword: "old", NewPassword: "newpass"}.Validate(),
		"oldPassword must be at least 6 characters")
	requireInvalidArgument(t,
		ChangePasswordRequest{OldPassword: "oldpass", NewPassword: "new"}.Validate(),
		"newPassword must be at least 6 characters")
}

func TestStaffLoginRequestValidate(t *testing.T) {
	require.NoError(t, StaffLoginRequest{Email: "ops@example.com", Password: "secret-pw"}.Validate())
	requireInvalidArgument(t, StaffLoginRequest{Password: "secret-pw"}.Validate(), "email is required")
	requireInvalidArgument(t, StaffLoginRequest{Email: "ops@example.com", Password: "123"}.Validate(), "password must be at least 6 characters")
}
