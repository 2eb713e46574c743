package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TeamGrowth = "Growth and Marketing"
	TeamTech   = "Tech and Development"
)

var Teams = []string{TeamGrowth, TeamTech}

func IsValidTeam(team string) bool {
	for _, t := range Teams {
		if t == team {
			return true
		}
	}
	return false
}

// GrowthMetrics is the structured metric set submitted by the Growth and
// Marketing team.
type GrowthMetrics struct {
	NewLeads          string `json:"new_leads" bson:"new_leads"`
	PUConversions     string `json:"pu_conversions" bson:"pu_conversions"`
	LGSConversions    string `json:"lgs_conversions" bson:"lgs_conversions"`
	SummerConversions string `json:"summer_conversions" bson:"summer_conversions"`
	CETConversions    string `json:"cet_conversions" bson:"cet_conversions"`
}

// TechMetrics is the structured metric set submitted by the Tech and
// Development team.
type TechMetrics struct {
	LessonsCompleted string `json:"lessons_completed" bson:"lessons_completed"`
	SkillsAdded      string `json:"skills_added" bson:"skills_added"`
	StudentsMentored string `json:"students_mentored" bson:"students_mentored"`
	HoursMentored    string `json:"hours_mentored" bson:"hours_mentored"`
}

// TeamMetrics is a tagged variant: at most one of the per-team metric sets is
// populated, chosen by the owning employee's team. Both fields are nil for
// unassigned or unknown teams.
type TeamMetrics struct {
	Growth *GrowthMetrics `json:"growth,omitempty" bson:"growth,omitempty"`
	Tech   *TechMetrics   `json:"tech,omitempty" bson:"tech,omitempty"`
}

// Map flattens the populated variant into the key-value view rendered by the
// dashboard. Unassigned teams produce an empty map.
func (m TeamMetrics) Map() map[string]string {
	out := map[string]string{}
	switch {
	case m.Growth != nil:
		out["new_leads"] = m.Growth.NewLeads
		out["pu_conversions"] = m.Growth.PUConversions
		out["lgs_conversions"] = m.Growth.LGSConversions
		out["summer_conversions"] = m.Growth.SummerConversions
		out["cet_conversions"] = m.Growth.CETConversions
	case m.Tech != nil:
		out["lessons_completed"] = m.Tech.LessonsCompleted
		out["skills_added"] = m.Tech.SkillsAdded
		out["students_mentored"] = m.Tech.StudentsMentored
		out["hours_mentored"] = m.Tech.HoursMentored
	}
	return out
}

// DailyReport is one employee's self-report for a single calendar date.
type DailyReport struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Date         string             `json:"date" bson:"date,omitempty"`
	TodayActions string             `json:"today_actions" bson:"today_actions"`
	Outcomes     string             `json:"outcomes" bson:"outcomes"`
	WeeklyPlan   string             `json:"weekly_plan" bson:"weekly_plan"`
	DAUMetric    string             `json:"dau_metric" bson:"dau_metric"`
	GradesQA     string             `json:"grades_qa" bson:"grades_qa"`
	TeamMetrics  TeamMetrics        `json:"team_metrics" bson:"team_metrics"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// ReportSavePayload carries the free-text report fields plus every known
// metric field. Metric values are stored exactly as submitted; which of them
// end up persisted depends on the employee's team.
type ReportSavePayload struct {
	TodayActions string `json:"today_actions"`
	Outcomes     string `json:"outcomes"`
	WeeklyPlan   string `json:"weekly_plan"`
	DAUMetric    string `json:"dau_metric"`
	GradesQA     string `json:"grades_qa"`

	NewLeads          string `json:"new_leads"`
	PUConversions     string `json:"pu_conversions"`
	LGSConversions    string `json:"lgs_conversions"`
	SummerConversions string `json:"summer_conversions"`
	CETConversions    string `json:"cet_conversions"`

	LessonsCompleted string `json:"lessons_completed"`
	SkillsAdded      string `json:"skills_added"`
	StudentsMentored string `json:"students_mentored"`
	HoursMentored    string `json:"hours_mentored"`
}

// AttendancePostPayload is the attendance page form. The same POST serves
// both actions; SaveReport selects the report branch, otherwise a non-empty
// Status marks or updates today's attendance.
type AttendancePostPayload struct {
	SaveReport bool `json:"save_report"`
	ReportSavePayload

	Status   string `json:"status"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	ExtraDay bool   `json:"extra_day"`
}

// BuildTeamMetrics selects the metric variant matching the employee's team
// from the submitted fields.
func BuildTeamMetrics(team string, p ReportSavePayload) TeamMetrics {
	switch team {
	case TeamGrowth:
		return TeamMetrics{Growth: &GrowthMetrics{
			NewLeads:          p.NewLeads,
			PUConversions:     p.PUConversions,
			LGSConversions:    p.LGSConversions,
			SummerConversions: p.SummerConversions,
			CETConversions:    p.CETConversions,
		}}
	case TeamTech:
		return TeamMetrics{Tech: &TechMetrics{
			LessonsCompleted: p.LessonsCompleted,
			SkillsAdded:      p.SkillsAdded,
			StudentsMentored: p.StudentsMentored,
			HoursMentored:    p.HoursMentored,
		}}
	default:
		return TeamMetrics{}
	}
}
