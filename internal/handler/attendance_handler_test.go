package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"tvh-attendance-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func markBody(extra map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"staffId": "TVH-101",
		"name":    "MR HEERA LAL",
		"photo":   "data:image/jpeg;base64,/9j/4AAQ",
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func TestMarkAttendanceCreated(t *testing.T) {
	app, repo := newAttendanceApp(usecase.PolicyConfig{CutoffHour: 10})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", markBody(nil)), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
		Data    struct {
			Type   string `json:"type"`
			Status string `json:"status"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "In", payload.Data.Type)
	assert.Contains(t, payload.Message, "Punch In Successful")
	assert.Len(t, repo.events, 1)
}

func TestMarkAttendanceMissingFields(t *testing.T) {
	app, repo := newAttendanceApp(usecase.PolicyConfig{CutoffHour: 10})

	body := markBody(nil)
	delete(body, "photo")
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", body), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.events)
}

func TestMarkAttendanceLocationRequired(t *testing.T) {
	app, repo := newAttendanceApp(usecase.PolicyConfig{
		CutoffHour: 10, GeofenceEnabled: true,
		OfficeLatitude: 28.6315, OfficeLongitude: 77.2167,
		CheckInRadiusMeters: 50, CheckOutRadiusMeters: 20,
	})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", markBody(nil)), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Rejected before anything was written.
	assert.Empty(t, repo.events)
}

func TestMarkAttendanceGeofenceRejected(t *testing.T) {
	app, repo := newAttendanceApp(usecase.PolicyConfig{
		CutoffHour: 10, GeofenceEnabled: true,
		OfficeLatitude: 28.6315, OfficeLongitude: 77.2167,
		CheckInRadiusMeters: 50, CheckOutRadiusMeters: 20,
	})

	body := markBody(map[string]interface{}{
		"location": map[string]interface{}{"latitude": 28.7, "longitude": 77.2167, "accuracy": 5},
	})
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", body), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "away from the office")
	assert.Empty(t, repo.events)
}

func TestMarkAttendanceVerifiedAtOffice(t *testing.T) {
	app, _ := newAttendanceApp(usecase.PolicyConfig{
		CutoffHour: 10, GeofenceEnabled: true,
		OfficeLatitude: 28.6315, OfficeLongitude: 77.2167,
		CheckInRadiusMeters: 50, CheckOutRadiusMeters: 20,
	})

	body := markBody(map[string]interface{}{
		"type":     "Out",
		"location": map[string]interface{}{"latitude": 28.6315, "longitude": 77.2167, "accuracy": 5},
	})
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", body), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Data struct {
			Status   string `json:"status"`
			Location struct {
				Verified bool `json:"verified"`
			} `json:"location"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Checked Out", payload.Data.Status)
	assert.True(t, payload.Data.Location.Verified)
}

func TestListAttendance(t *testing.T) {
	app, _ := newAttendanceApp(usecase.PolicyConfig{CutoffHour: 10})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", markBody(nil)), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/attendance/", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	assert.Len(t, logs, 2)
}

func TestExportAttendanceCSV(t *testing.T) {
	app, _ := newAttendanceApp(usecase.PolicyConfig{CutoffHour: 10})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/attendance/", markBody(nil)), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/attendance/export", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	raw, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "staffId,staffName,date,time,status,type", strings.TrimSpace(lines[0]))
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "TVH-101")
}
