package models

import "time"

// Risk bucket labels. Stats matching is substring-based, so stored labels
// may carry extra text around these (e.g. "Moderately High Risk").
const (
	RiskHigh = "High Risk"
	RiskMid  = "Mid Risk"
	RiskLow  = "Low Risk"
)

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RiskResult is one client-computed risk sub-score (blood pressure,
// blood sugar, or temperature)
type RiskResult struct {
	Risk  string `json:"risk"`
	Score int    `json:"score"`
}

type SubmitAssessmentRequest struct {
	PatientName string     `json:"patientName"`
	Age         int        `json:"age"`
	Systolic    int        `json:"systolic"`
	Diastolic   int        `json:"diastolic"`
	BloodSugar  float64    `json:"bloodSugar"`
	Temperature float64    `json:"temperature"`
	IsFasting   bool       `json:"isFasting"`
	BPRisk      RiskResult `json:"bpRisk"`
	SugarRisk   RiskResult `json:"sugarRisk"`
	TempRisk    RiskResult `json:"tempRisk"`
	TotalScore  int        `json:"totalScore"`
	OverallRisk string     `json:"overallRisk"`
}

// Response types

// AdminInfo is the public projection of an admin record (never the hash)
type AdminInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

type SubmitAssessmentResponse struct {
	Success    bool       `json:"success"`
	Assessment Assessment `json:"assessment"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListAssessmentsResponse struct {
	Assessments []Assessment `json:"assessments"`
	Pagination  Pagination   `json:"pagination"`
}

// ExportRecord is one assessment reshaped with display-friendly labels for
// spreadsheet-style consumption
type ExportRecord struct {
	Date        string  `json:"Date"`
	Time        string  `json:"Time"`
	PatientName string  `json:"Patient Name"`
	Age         int     `json:"Age"`
	Systolic    int     `json:"Systolic BP"`
	Diastolic   int     `json:"Diastolic BP"`
	BloodSugar  float64 `json:"Blood Sugar"`
	Fasting     string  `json:"Fasting"`
	Temperature float64 `json:"Temperature"`
	BPRisk      string  `json:"BP Risk"`
	SugarRisk   string  `json:"Sugar Risk"`
	TempRisk    string  `json:"Temp Risk"`
	OverallRisk string  `json:"Overall Risk"`
	TotalScore  int     `json:"Total Score"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RiskDistribution struct {
	High int `json:"high"`
	Mid  int `json:"mid"`
	Low  int `json:"low"`
}

// RecentAssessment is the trimmed projection used on the dashboard
type RecentAssessment struct {
	ID          int       `json:"id"`
	PatientName string    `json:"patientName"`
	OverallRisk string    `json:"overallRisk"`
	CreatedAt   time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalAssessments  int                `json:"totalAssessments"`
	RiskDistribution  RiskDistribution   `json:"riskDistribution"`
	RecentAssessments []RecentAssessment `json:"recentAssessments"`
}

// Domain types

type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never exposed in JSON
	CreatedAt time.Time `json:"createdAt"`
}

// Info returns the public projection of the admin
func (a Admin) Info() AdminInfo {
	return AdminInfo{ID: a.ID, Email: a.Email, Name: a.Name}
}

type Assessment struct {
	ID             int       `json:"id"`
	PatientName    string    `json:"patientName"`
	Age            int       `json:"age"`
	Systolic       int       `json:"systolic"`
	Diastolic      int       `json:"diastolic"`
	BloodSugar     float64   `json:"bloodSugar"`
	Temperature    float64   `json:"temperature"`
	IsFasting      bool      `json:"isFasting"`
	BPRiskLevel    string    `json:"bpRiskLevel"`
	BPRiskScore    int       `json:"bpRiskScore"`
	SugarRiskLevel string    `json:"sugarRiskLevel"`
	SugarRiskScore int       `json:"sugarRiskScore"`
	TempRiskLevel  string    `json:"tempRiskLevel"`
	TempRiskScore  int       `json:"tempRiskScore"`
	TotalScore     int       `json:"totalScore"`
	OverallRisk    string    `json:"overallRisk"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
