package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/server/mocks"
)

func TestServer_weeks(t *testing.T) {
	week := domain.StrategicWeek{ID: 1, StartDate: domain.NewDate(2025, time.January, 1),
		EndDate: domain.NewDate(2025, time.January, 7), Cycle: 20, Category: "Saúde", Subcategory: "Vacinação"}
	weeks := &mocks.WeekServiceMock{
		ListFunc: func(ctx context.Context, day domain.Date) ([]domain.StrategicWeek, error) {
			if !day.IsZero() && !week.Interval().Contains(day) {
				return nil, nil
			}
			return []domain.StrategicWeek{week}, nil
		},
		GetFunc: func(ctx context.Context, id int64) (domain.StrategicWeek, error) {
			if id != 1 {
				return domain.StrategicWeek{}, fmt.Errorf("week %d: %w", id, domain.ErrNotFound)
			}
			return week, nil
		},
		CreateFunc: func(ctx context.Context, in domain.WeekInput) (domain.StrategicWeek, error) {
			if err := in.Validate(); err != nil {
				return domain.StrategicWeek{}, err
			}
			if in.Interval().Overlaps(week.Interval()) {
				return domain.StrategicWeek{}, &domain.OverlapError{ID: week.ID, Cycle: week.Cycle, Interval: week.Interval()}
			}
			return domain.StrategicWeek{ID: 2, StartDate: in.StartDate, EndDate: in.EndDate, Cycle: in.Cycle,
				Category: in.Category, Subcategory: in.Subcategory}, nil
		},
		UpdateFunc: func(ctx context.Context, id int64, in domain.WeekInput) (domain.StrategicWeek, error) {
			return domain.StrategicWeek{ID: id, StartDate: in.StartDate, EndDate: in.EndDate, Cycle: in.Cycle,
				Category: in.Category, Subcategory: in.Subcategory}, nil
		},
	}
	srv := testServer(t, Services{Weeks: weeks})

	t.Run("list", func(t *testing.T) {
		w := serve(t, srv.router, "GET", "/semana-estrategica", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data_inicial":"01/01/2025"`)

		w = serve(t, srv.router, "GET", "/semana-estrategica?data=20/01/2025", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		w = serve(t, srv.router, "GET", "/semana-estrategica?data=2025-01-20", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := serve(t, srv.router, "GET", "/semana-estrategica/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ciclo":20`)

		w = serve(t, srv.router, "GET", "/semana-estrategica/9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		w := serve(t, srv.router, "POST", "/semana-estrategica",
			`{"data_inicial":"08/01/2025","data_final":"14/01/2025","ciclo":21,"categoria":"Gestão","subcategoria":"Contas"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"id":2`)
	})

	t.Run("create overlapping", func(t *testing.T) {
		w := serve(t, srv.router, "POST", "/semana-estrategica",
			`{"data_inicial":"07/01/2025","data_final":"14/01/2025","ciclo":21,"categoria":"Gestão","subcategoria":"Contas"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeJSON[map[string]any](t, w)
		conflict := resp["conflict"].(map[string]any)
		assert.InDelta(t, 1, conflict["id"], 0)
		assert.InDelta(t, 20, conflict["ciclo"], 0)
		assert.Equal(t, "01/01/2025", conflict["data_inicial"])
	})

	t.Run("create invalid", func(t *testing.T) {
		w := serve(t, srv.router, "POST", "/semana-estrategica",
			`{"data_inicial":"14/01/2025","data_final":"08/01/2025","ciclo":21,"categoria":"Gestão","subcategoria":"Contas"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = serve(t, srv.router, "POST", "/semana-estrategica", `{"data_inicial":"31/02/2025"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := serve(t, srv.router, "PUT", "/semana-estrategica/1",
			`{"data_inicial":"02/01/2025","data_final":"08/01/2025","ciclo":22,"categoria":"Saúde","subcategoria":"Dengue"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subcategoria":"Dengue"`)
		require.Len(t, weeks.UpdateCalls(), 1)
		assert.Equal(t, int64(1), weeks.UpdateCalls()[0].ID)

		w = serve(t, srv.router, "PUT", "/semana-estrategica/x", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_portals(t *testing.T) {
	portals := &mocks.PortalServiceMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.Portal, error) {
			if name != "Gazeta do Povo" {
				return domain.Portal{}, domain.ErrNotFound
			}
			return domain.Portal{ID: 1, Name: name, BaseScore: 20, Reach: domain.ReachRegional, Priority: domain.PriorityHigh}, nil
		},
		CreateFunc: func(ctx context.Context, p domain.Portal) (domain.Portal, error) {
			if err := p.Validate(); err != nil {
				return domain.Portal{}, err
			}
			p.ID = 2
			return p, nil
		},
		UpdateFunc: func(ctx context.Context, id int64, p domain.Portal) (domain.Portal, error) {
			p.ID = id
			return p, nil
		},
	}
	srv := testServer(t, Services{Portals: portals})

	w := serve(t, srv.router, "GET", "/portais/Gazeta%20do%20Povo", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"nome":"Gazeta do Povo","pontos":20,"abrangencia":"Regional","prioridade":"Alta","url":null}`,
		w.Body.String())

	w = serve(t, srv.router, "GET", "/portais/Outro", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, srv.router, "POST", "/portais", `{"nome":"Folha","pontos":40,"abrangencia":"Nacional","prioridade":"Media"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)

	w = serve(t, srv.router, "POST", "/portais", `{"nome":"Folha","pontos":40,"abrangencia":"Mundial","prioridade":"Media"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, srv.router, "PUT", "/portais/5", `{"nome":"Folha","pontos":45,"abrangencia":"Nacional","prioridade":"Alta"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}
