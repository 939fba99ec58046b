/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: email, password
  - RegisterRequest: name, email, password
  - SubmitAssessmentRequest: patient vitals plus client-computed risk
    results (bpRisk/sugarRisk/tempRisk as {risk, score} pairs)

# Response Types

Types for JSON responses:

  - AuthResponse: token, admin (public projection)
  - SubmitAssessmentResponse: success, assessment
  - ListAssessmentsResponse: assessments, pagination
  - ExportRecord: display-labeled flat record ("Patient Name", "BP Risk", ...)
  - StatsResponse: totalAssessments, riskDistribution, recentAssessments
  - DeleteResponse: success, message
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - Admin: administrator account; the password hash is json:"-" and the
    Info method produces the public projection
  - Assessment: one stored health assessment with flattened risk columns

# Constants

Risk bucket labels used by the stats aggregation:

	RiskHigh = "High Risk"
	RiskMid  = "Mid Risk"
	RiskLow  = "Low Risk"
*/
package models
