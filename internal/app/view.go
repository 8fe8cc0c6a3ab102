package app

import "github.com/alexanderramin/farmtrip/internal/domain"

const isoDate = "2006-01-02"

// ItineraryView is the persisted/transported itinerary shape.
type ItineraryView struct {
	ItineraryID    string             `json:"itinerary_id"`
	Version        int                `json:"version"`
	TotalDays      int                `json:"total_days"`
	StartDate      string             `json:"start_date"`
	Itinerary      []ScheduleItemView `json:"itinerary"`
	BubbleSchedule BubbleScheduleView `json:"bubble_schedule"`
	Summary        SummaryView        `json:"summary"`
	Resolution     ResolutionView     `json:"resolution"`
	UsedDefault    bool               `json:"used_default"`
	Warnings       []string           `json:"warnings,omitempty"`
}

type ScheduleItemView struct {
	Day          int    `json:"day"`
	Date         string `json:"date"`
	DateLabel    string `json:"date_label"`
	ScheduleType string `json:"schedule_type"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	Address      string `json:"address"`
	Free         bool   `json:"free,omitempty"`
	Special      bool   `json:"special,omitempty"`
}

type BubbleScheduleView struct {
	GroupedSchedule []GroupEntryView    `json:"grouped_schedule"`
	CalendarEvents  []CalendarEventView `json:"calendar_events"`
}

type GroupEntryView struct {
	Type         string             `json:"type"`
	Title        string             `json:"title"`
	StartDay     int                `json:"start_day"`
	EndDay       int                `json:"end_day"`
	Dates        []string           `json:"dates"`
	DurationDays int                `json:"duration_days"`
	FarmName     string             `json:"farm_name,omitempty"`
	FarmAddress  string             `json:"farm_address,omitempty"`
	WorkTime     string             `json:"work_time,omitempty"`
	Description  string             `json:"description,omitempty"`
	Items        []ScheduleItemView `json:"items,omitempty"`
}

type CalendarEventView struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Day      int    `json:"day"`
	Type     string `json:"type"`
}

type SummaryView struct {
	Duration      int    `json:"duration"`
	FarmDaysCount int    `json:"farm_days_count"`
	TourDaysCount int    `json:"tour_days_count"`
	Region        string `json:"region"`
}

type ResolutionView struct {
	Duration     string `json:"duration"`
	StartDate    string `json:"start_date"`
	SpecialEvent string `json:"special_event,omitempty"`
}

// NewItineraryView maps an itinerary and its derived views to the transport shape.
func NewItineraryView(it *domain.Itinerary, groups []domain.GroupEntry, events []domain.CalendarEvent) ItineraryView {
	summary := it.Summary()
	v := ItineraryView{
		ItineraryID: it.ID,
		Version:     it.Version,
		TotalDays:   it.TotalDays,
		StartDate:   it.StartDate.Format(isoDate),
		Itinerary:   mapItems(it.Items),
		Summary: SummaryView{
			Duration:      summary.Duration,
			FarmDaysCount: summary.FarmDaysCount,
			TourDaysCount: summary.TourDaysCount,
			Region:        summary.Region,
		},
		Resolution: ResolutionView{
			Duration:  string(it.DurationSource),
			StartDate: string(it.StartSource),
		},
		UsedDefault: it.DurationSource == domain.ProvenanceDefaulted || it.StartSource == domain.ProvenanceDefaulted,
		Warnings:    domain.CloneStrings(it.Warnings),
	}

	v.BubbleSchedule.GroupedSchedule = make([]GroupEntryView, 0, len(groups))
	for _, g := range groups {
		dates := make([]string, len(g.Dates))
		for i, d := range g.Dates {
			dates[i] = domain.KoreanDateLabel(d)
		}
		v.BubbleSchedule.GroupedSchedule = append(v.BubbleSchedule.GroupedSchedule, GroupEntryView{
			Type:         string(g.Kind),
			Title:        g.Title,
			StartDay:     g.StartDay,
			EndDay:       g.EndDay,
			Dates:        dates,
			DurationDays: g.DurationDays,
			FarmName:     g.FarmName,
			FarmAddress:  g.FarmAddress,
			WorkTime:     g.WorkTime,
			Description:  g.Description,
			Items:        mapItems(g.Items),
		})
	}

	v.BubbleSchedule.CalendarEvents = make([]CalendarEventView, 0, len(events))
	for _, e := range events {
		v.BubbleSchedule.CalendarEvents = append(v.BubbleSchedule.CalendarEvents, CalendarEventView{
			Date:     e.DateTime,
			Activity: e.Activity,
			Day:      e.Day,
			Type:     string(e.Type),
		})
	}
	return v
}

func mapItems(items []domain.ScheduleItem) []ScheduleItemView {
	if len(items) == 0 {
		return nil
	}
	out := make([]ScheduleItemView, 0, len(items))
	for _, item := range items {
		out = append(out, ScheduleItemView{
			Day:          item.Day,
			Date:         item.Date.Format(isoDate),
			DateLabel:    item.DateLabel(),
			ScheduleType: string(item.Type),
			Name:         item.Name,
			StartTime:    item.StartTime,
			Address:      item.Address,
			Free:         item.Free,
			Special:      item.Special,
		})
	}
	return out
}
