package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"linka/shared/failure"
	"linka/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatRequest struct {
	RideID     string `json:"ride_id"     validate:"required,uuid"`
	Seats      int    `json:"seats"       validate:"gte=1,lte=8"`
	Phone      string `json:"phone"       validate:"omitempty,e164"`
	DepartDate string `json:"depart_date" validate:"omitempty,datetime=2006-01-02"`
}

type uploadRequest struct {
	Document *multipart.FileHeader `json:"document" validate:"required,mimetypes=image/png application/pdf,maxfilesize=1"`
}

func validSeatRequest() seatRequest {
	return seatRequest{RideID: "0b6f5d1e-2a7c-4c8e-9f1a-3d2b4c5e6f70", Seats: 2}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *seatRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(_ *seatRequest) {}},
		{name: "missing ride", mutate: func(r *seatRequest) { r.RideID = "" }, wantMsg: "ride_id is required"},
		{name: "ride not a uuid", mutate: func(r *seatRequest) { r.RideID = "ride-1" }, wantMsg: "ride_id must be a valid UUID"},
		{name: "too few seats", mutate: func(r *seatRequest) { r.Seats = 0 }, wantMsg: "seats must be greater than or equal to 1"},
		{name: "too many seats", mutate: func(r *seatRequest) { r.Seats = 9 }, wantMsg: "seats must be less than or equal to 8"},
		{name: "bad phone", mutate: func(r *seatRequest) { r.Phone = "0812" }, wantMsg: "phone must be a phone number in E.164 format"},
		{name: "bad date", mutate: func(r *seatRequest) { r.DepartDate = "01/11/2026" }, wantMsg: "depart_date must match the format 2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSeatRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"ride_id":"0b6f5d1e-2a7c-4c8e-9f1a-3d2b4c5e6f70","seats":1}`},
		{name: "fails rules", body: `{"ride_id":"0b6f5d1e-2a7c-4c8e-9f1a-3d2b4c5e6f70","seats":0}`, wantErr: true},
		{name: "malformed json", body: `{"ride_id":`, wantErr: true},
		{name: "wrong type", body: `{"seats":"two"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req seatRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindValidation, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, req.Seats)
		})
	}
}

func TestValidateStruct_Uploads(t *testing.T) {
	file := func(contentType string, size int64) *multipart.FileHeader {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentType)

		return &multipart.FileHeader{Filename: "doc", Header: header, Size: size}
	}

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantMsg string
	}{
		{name: "pdf within limit", file: file("application/pdf", 512*1024)},
		{name: "content type with params", file: file("image/png; charset=binary", 1024)},
		{name: "missing", file: nil, wantMsg: "document is required"},
		{name: "wrong type", file: file("image/gif", 1024), wantMsg: "document must be one of image/png application/pdf"},
		{name: "too large", file: file("application/pdf", 2<<20), wantMsg: "document must be at most 1 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadRequest{Document: tt.file})

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("driver@linka.app", "required,email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "required,email"))
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed rejected"))
	assert.Error(t, validator.ValidateVar("archived", "oneof=pending confirmed rejected"))
}
