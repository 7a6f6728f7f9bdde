package charts

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/nrql"
)

const defaultQueryTimeout = 30 * time.Second

// ResultMsg delivers a query result to the panel that issued it.
type ResultMsg struct {
	PanelID string
	Result  *nerdgraph.Result
	Err     error
}

type pollMsg struct {
	panelID string
}

// Panel subscribes a renderer to a query. It runs the query on Init, keeps
// the latest successful result and, for TIMESERIES queries, polls again
// every interval. Failures are logged and leave the previous data in place.
type Panel struct {
	id        string
	querier   nerdgraph.Querier
	accountID int
	query     string
	renderer  Renderer
	result    *nerdgraph.Result
	lastErr   error

	poll    time.Duration
	timeout time.Duration
	logger  *zap.Logger
}

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// WithPollInterval sets how often TIMESERIES queries refresh. Zero disables
// polling.
func WithPollInterval(d time.Duration) PanelOption {
	return func(p *Panel) { p.poll = d }
}

// WithLogger sets the logger for query failures.
func WithLogger(l *zap.Logger) PanelOption {
	return func(p *Panel) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTimeout bounds each query.
func WithTimeout(d time.Duration) PanelOption {
	return func(p *Panel) { p.timeout = d }
}

// NewPanel creates a panel for query on accountID drawn by r.
func NewPanel(q nerdgraph.Querier, accountID int, query string, r Renderer, opts ...PanelOption) *Panel {
	p := &Panel{
		id:        uuid.NewString(),
		querier:   q,
		accountID: accountID,
		query:     query,
		renderer:  r,
		timeout:   defaultQueryTimeout,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Panel) ID() string                { return p.id }
func (p *Panel) Query() string             { return p.query }
func (p *Panel) Renderer() Renderer        { return p.renderer }
func (p *Panel) Result() *nerdgraph.Result { return p.result }

// Err is the most recent query error. Renderers never see it.
func (p *Panel) Err() error { return p.lastErr }

func (p *Panel) Init() tea.Cmd {
	return p.fetch()
}

// Update consumes messages addressed to this panel and ignores the rest.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ResultMsg:
		if msg.PanelID != p.id {
			return nil
		}
		if msg.Err != nil {
			p.lastErr = msg.Err
			p.logger.Warn("panel query failed",
				zap.String("panel", p.id),
				zap.String("nrql", p.query),
				zap.Error(msg.Err))
		} else {
			p.lastErr = nil
			p.result = msg.Result
		}
		return p.schedule()

	case pollMsg:
		if msg.panelID != p.id {
			return nil
		}
		return p.fetch()
	}
	return nil
}

// View renders the current result.
func (p *Panel) View(width, height int) string {
	return p.renderer.Render(p.result, width, height)
}

func (p *Panel) fetch() tea.Cmd {
	if p.querier == nil {
		return nil
	}
	id, q, acct, timeout := p.id, p.querier, p.accountID, p.timeout
	query := p.query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := q.Query(ctx, acct, query)
		return ResultMsg{PanelID: id, Result: res, Err: err}
	}
}

func (p *Panel) schedule() tea.Cmd {
	if p.poll <= 0 || !nrql.IsTimeseries(p.query) {
		return nil
	}
	id := p.id
	return tea.Tick(p.poll, func(time.Time) tea.Msg {
		return pollMsg{panelID: id}
	})
}
