// Package api serves calendar queries over HTTP as JSON.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/rabitt1ove/syukujitsu"
)

// Routes.
const (
	Health   = "/health"
	DayPath  = "/v1/holidays/{year:[0-9]+}/{month:[0-9]+}/{day:[0-9]+}"
	YearPath = "/v1/holidays/{year:[0-9]+}"
)

// ErrCodeInvalidDate is the error code for unparsable or impossible dates.
const ErrCodeInvalidDate = "invalid_date"

// DayResponse describes one date. Month in Date is 1-based.
type DayResponse struct {
	Date                 string `json:"date"`
	Kind                 string `json:"kind"`
	Name                 string `json:"name,omitempty"`
	IsHoliday            bool   `json:"is_holiday"`
	IsRealPublicHoliday  bool   `json:"is_real_public_holiday"`
	IsSubstituteSandwich bool   `json:"is_substitute_sandwich"`
	IsSubstituteSunday   bool   `json:"is_substitute_sunday"`
	IsDayBeforeHoliday   bool   `json:"is_day_before_holiday"`
	IsDayAfterHoliday    bool   `json:"is_day_after_holiday"`
	IsWeekend            bool   `json:"is_weekend"`
	IsSunday             bool   `json:"is_sunday"`
}

// HolidayResponse is one entry of a year listing.
type HolidayResponse struct {
	Date       string `json:"date"`
	Name       string `json:"name"`
	Substitute bool   `json:"substitute"`
}

// YearResponse lists the holidays of a year.
type YearResponse struct {
	Year     int               `json:"year"`
	Holidays []HolidayResponse `json:"holidays"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Controller answers calendar queries.
type Controller struct {
	cal    *syukujitsu.Calendar
	logger logrus.FieldLogger
}

func NewController(cal *syukujitsu.Calendar, logger logrus.FieldLogger) *Controller {
	return &Controller{cal: cal, logger: logger}
}

// NewRouter wires the controller routes behind CORS. An empty origins list
// allows any origin.
func NewRouter(ctrl *Controller, origins []string) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(Health, ctrl.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc(DayPath, ctrl.DayHandler).Methods(http.MethodGet)
	router.HandleFunc(YearPath, ctrl.YearHandler).Methods(http.MethodGet)

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func (c *Controller) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// DayHandler classifies /v1/holidays/{year}/{month}/{day}; month is 1-based.
func (c *Controller) DayHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, yErr := strconv.Atoi(vars["year"])
	month, mErr := strconv.Atoi(vars["month"])
	day, dErr := strconv.Atoi(vars["day"])
	if yErr != nil || mErr != nil || dErr != nil || year < 1 || year > 9999 {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidDate, "invalid date")
		return
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if month < 1 || month > 12 || t.Day() != day {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidDate, "no such date")
		return
	}

	m := month - 1
	resp := DayResponse{
		Date:                 t.Format("2006-01-02"),
		Kind:                 c.cal.Classify(year, m, day).String(),
		Name:                 c.cal.HolidayName(year, m, day),
		IsHoliday:            c.cal.IsHoliday(year, m, day),
		IsRealPublicHoliday:  c.cal.IsRealPublicHoliday(year, m, day),
		IsSubstituteSandwich: c.cal.IsSubstituteHolidaySandwich(year, m, day),
		IsSubstituteSunday:   c.cal.IsSubstituteHolidaySunday(year, m, day),
		IsDayBeforeHoliday:   c.cal.IsDayBeforeHoliday(year, m, day),
		IsDayAfterHoliday:    c.cal.IsDayAfterHoliday(year, m, day),
		IsWeekend:            c.cal.IsWeekend(year, m, day),
		IsSunday:             c.cal.IsSunday(year, m, day),
	}
	c.logger.WithFields(logrus.Fields{"date": resp.Date, "kind": resp.Kind}).Debug("classified")
	respondWithJSON(w, http.StatusOK, resp)
}

// YearHandler lists the holidays of /v1/holidays/{year}.
func (c *Controller) YearHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year < 1 || year > 9999 {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidDate, "invalid year")
		return
	}
	resp := YearResponse{Year: year, Holidays: []HolidayResponse{}}
	for _, h := range c.cal.HolidaysInYear(year) {
		resp.Holidays = append(resp.Holidays, HolidayResponse{
			Date:       h.Date.Format("2006-01-02"),
			Name:       h.Name,
			Substitute: h.Substitute,
		})
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(w, status, ErrorResponse{Code: code, Message: message})
}
