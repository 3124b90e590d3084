package models

// RegressionFeatures is one extracted observation for the socioeconomic
// regression: categorical columns recoded to numeric covariates plus the
// student's average score across the four scored modules. Rows with any
// missing input are excluded by the query itself.
type RegressionFeatures struct {
	Estrato         int     `json:"estrato"`
	IsPublic        int     `json:"is_public"`
	IsMale          int     `json:"is_male"`
	FatherEducation int     `json:"father_education"`
	MotherEducation int     `json:"mother_education"`
	HasInternet     int     `json:"has_internet"`
	HasComputer     int     `json:"has_computer"`
	SelfPaid        int     `json:"self_paid"`
	ParentPaid      int     `json:"parent_paid"`
	AvgScore        float64 `json:"avg_score"`
}
