package views

import (
	"blacktie/src/api"
	"blacktie/src/models"
	"context"
	"sync"
)

// DashboardData is the joined result of the admin dashboard's independent
// reads. There is no partial render: all three fetches must succeed.
type DashboardData struct {
	Metrics  *models.AdminMetrics
	Users    []models.User
	Garments []models.Garment
}

type Dashboard struct {
	admin api.AdminAPI
}

func NewDashboard(admin api.AdminAPI) *Dashboard {
	return &Dashboard{admin: admin}
}

// Load issues the three reads concurrently and joins on all-complete. Any
// single failure surfaces as the page-level error.
func (v *Dashboard) Load(ctx context.Context) (*DashboardData, error) {
	var (
		wg          sync.WaitGroup
		data        DashboardData
		metricsErr  error
		usersErr    error
		garmentsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Metrics, metricsErr = v.admin.AdminMetrics(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Users, usersErr = v.admin.AdminListUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Garments, garmentsErr = v.admin.AdminListGarments(ctx)
	}()
	wg.Wait()
	for _, err := range []error{metricsErr, usersErr, garmentsErr} {
		if err != nil {
			return nil, err
		}
	}
	return &data, nil
}
