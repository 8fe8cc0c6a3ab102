package scheduler

import (
	"time"

	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/domain"
)

var testVocab = config.DefaultVocabulary()

func testFarm() *domain.Farm {
	return &domain.Farm{
		ID:      "farm-1",
		Name:    "햇살농원",
		Address: "전북특별자치도 김제시 금산면 모악로 1",
		Region:  "김제시",
		Tags:    []string{"사과", "수확"},
	}
}

func attraction(id, name, address string) domain.Attraction {
	return domain.Attraction{ID: id, Name: name, Address: address, Region: "김제시"}
}

func gimjeFestival() *domain.SpecialEvent {
	events := testVocab.SpecialEvents()
	for i := range events {
		if events[i].Region == "김제시" && events[i].Month == 10 {
			return &events[i]
		}
	}
	return nil
}

func octFirst() time.Time {
	return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
}
