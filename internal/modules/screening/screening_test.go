package screening

import (
	"errors"
	"math"
	"testing"

	"github.com/aristath/investlab/internal/domain"
	"github.com/aristath/investlab/internal/modules/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTable() domain.Dataset {
	return dataset.NewProvider().GetAll()
}

func allCategories() []domain.Category {
	return dataset.NewProvider().Categories()
}

func openCriteria(horizon domain.TimeHorizon) FilterCriteria {
	return FilterCriteria{
		Categories:  allCategories(),
		MaxRisk:     10,
		TimeHorizon: horizon,
	}
}

func TestFilterByCategory(t *testing.T) {
	ds := fullTable()

	t.Run("empty selection yields empty result", func(t *testing.T) {
		out := FilterByCategory(ds, nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)

		out = FilterByCategory(ds, []domain.Category{})
		assert.Empty(t, out)
	})

	t.Run("all categories keeps every row in order", func(t *testing.T) {
		out := FilterByCategory(ds, allCategories())
		assert.Equal(t, ds.Names(), out.Names())
	})

	t.Run("subset preserves source order", func(t *testing.T) {
		out := FilterByCategory(ds, []domain.Category{domain.CategoryInfrastructure, domain.CategoryEquities})
		assert.Equal(t, []string{"US Equity Fund", "Infrastructure Trust"}, out.Names())
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		out := FilterByCategory(ds, []domain.Category{"Crypto"})
		assert.Empty(t, out)
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := ds.Clone()
		FilterByCategory(ds, []domain.Category{domain.CategoryBonds})
		assert.Equal(t, before, ds)
	})
}

func TestApplyConstraints_LongHorizon(t *testing.T) {
	out := ApplyConstraints(fullTable(), openCriteria(domain.HorizonLong))

	assert.Equal(t, []string{
		"US Equity Fund",
		"Commercial Real Estate",
		"Life Settlements Fund",
		"Infrastructure Trust",
	}, out.Names())
}

func TestApplyConstraints_InflationHedgeOnly(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.InflationHedgeOnly = true

	out := ApplyConstraints(fullTable(), criteria)

	assert.Equal(t, []string{"Commercial Real Estate", "Infrastructure Trust"}, out.Names())
}

func TestApplyConstraints_MinInvestment(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.MinInvestment = 60000

	out := ApplyConstraints(fullTable(), criteria)

	assert.Equal(t, []string{"Infrastructure Trust"}, out.Names())
}

func TestApplyConstraints_HorizonWithoutRows(t *testing.T) {
	// No record has a Short horizon; there is no wildcard option.
	out := ApplyConstraints(fullTable(), openCriteria(domain.HorizonShort))

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestApplyConstraints_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(c *FilterCriteria)
		expected []string
	}{
		{
			name:     "min return is inclusive",
			modify:   func(c *FilterCriteria) { c.MinReturnPct = 8.5 },
			expected: []string{"US Equity Fund", "Life Settlements Fund"},
		},
		{
			name:     "max risk is inclusive",
			modify:   func(c *FilterCriteria) { c.MaxRisk = 4 },
			expected: []string{"Life Settlements Fund", "Infrastructure Trust"},
		},
		{
			name:     "min investment is inclusive",
			modify:   func(c *FilterCriteria) { c.MinInvestment = 50000 },
			expected: []string{"Commercial Real Estate", "Infrastructure Trust"},
		},
		{
			name:     "max risk zero excludes everything",
			modify:   func(c *FilterCriteria) { c.MaxRisk = 0 },
			expected: []string{},
		},
		{
			name:     "all constraints combined",
			modify:   func(c *FilterCriteria) { c.MinReturnPct = 7; c.MaxRisk = 6; c.InflationHedgeOnly = true },
			expected: []string{"Commercial Real Estate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := openCriteria(domain.HorizonLong)
			tt.modify(&criteria)
			assert.Equal(t, tt.expected, ApplyConstraints(fullTable(), criteria).Names())
		})
	}
}

func TestApplyConstraints_IgnoresCategories(t *testing.T) {
	criteria := openCriteria(domain.HorizonMedium)
	criteria.Categories = nil

	out := ApplyConstraints(fullTable(), criteria)

	assert.Equal(t, []string{"Global Bond ETF", "Gold ETF", "Direct Lending Fund"}, out.Names())
}

func TestApplyConstraints_Idempotent(t *testing.T) {
	ds := fullTable()
	for _, h := range domain.TimeHorizons {
		for _, hedge := range []bool{false, true} {
			criteria := openCriteria(h)
			criteria.InflationHedgeOnly = hedge
			criteria.MinReturnPct = 5

			once := ApplyConstraints(ds, criteria)
			twice := ApplyConstraints(once, criteria)
			assert.Equal(t, once, twice, "horizon=%s hedge=%v", h, hedge)
		}
	}
}

func TestAggregate_FullTable(t *testing.T) {
	stats := Aggregate(fullTable())

	expected := map[Column]float64{
		ColumnExpectedReturn:    51.8 / 7,
		ColumnRiskLevel:         34.0 / 7,
		ColumnCapRate:           6.0,
		ColumnLiquidity:         38.0 / 7,
		ColumnVolatility:        27.0 / 7,
		ColumnFees:              7.1 / 7,
		ColumnMinimumInvestment: 220000.0 / 7,
	}

	require.Len(t, stats, len(Columns))
	for col, want := range expected {
		got, ok := stats.Get(col)
		require.True(t, ok, "column %s should be present", col)
		assert.InDelta(t, want, got, 1e-9, "column %s", col)
	}
	assert.Equal(t, 2, stats[ColumnCapRate].Count)
	assert.Equal(t, 7, stats[ColumnExpectedReturn].Count)
}

func TestAggregate_NoCapRateRows(t *testing.T) {
	ds := FilterByCategory(fullTable(), []domain.Category{
		domain.CategoryEquities, domain.CategoryBonds, domain.CategoryCommodities,
	})

	stats := Aggregate(ds)

	_, ok := stats.Get(ColumnCapRate)
	assert.False(t, ok, "cap rate must be absent, not zero")
	assert.Zero(t, stats[ColumnCapRate].Count)

	for _, col := range Columns {
		if col == ColumnCapRate {
			continue
		}
		_, ok := stats.Get(col)
		assert.True(t, ok, "column %s should be present", col)
	}
}

func TestAggregate_EmptyDataset(t *testing.T) {
	stats := Aggregate(domain.Dataset{})

	require.Len(t, stats, len(Columns))
	for _, col := range Columns {
		st := stats[col]
		assert.False(t, st.Present, "column %s", col)
		assert.False(t, math.IsNaN(st.Value), "column %s must not carry NaN", col)
	}
}

func TestSummaryStatistics_GetUnknownColumn(t *testing.T) {
	_, ok := Aggregate(fullTable()).Get("unknown")
	assert.False(t, ok)
}

func TestRun_AllCategoriesLong(t *testing.T) {
	res := Run(fullTable(), openCriteria(domain.HorizonLong))

	assert.Len(t, res.CategoryFiltered, 7)
	assert.Equal(t, []string{
		"US Equity Fund",
		"Commercial Real Estate",
		"Life Settlements Fund",
		"Infrastructure Trust",
	}, res.Constrained.Names())
}

func TestRun_AllCategoriesLongHedgeOnly(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.InflationHedgeOnly = true

	res := Run(fullTable(), criteria)

	assert.Equal(t, []string{"Commercial Real Estate", "Infrastructure Trust"}, res.Constrained.Names())
}

func TestRun_BondsOnly(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.Categories = []domain.Category{domain.CategoryBonds}

	res := Run(fullTable(), criteria)

	assert.Equal(t, []string{"Global Bond ETF"}, res.CategoryFiltered.Names())
	assert.Empty(t, res.Constrained)

	_, ok := res.Stats.Get(ColumnCapRate)
	assert.False(t, ok)

	avgReturn, ok := res.Stats.Get(ColumnExpectedReturn)
	require.True(t, ok)
	assert.InDelta(t, 4.2, avgReturn, 1e-9)
}

func TestRun_MinInvestmentLong(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.MinInvestment = 60000

	res := Run(fullTable(), criteria)

	assert.Equal(t, []string{"Infrastructure Trust"}, res.Constrained.Names())
}

func TestRun_StatsDescribeWorkingSetNotConstrainedTable(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.MinInvestment = 60000

	res := Run(fullTable(), criteria)

	avgMin, ok := res.Stats.Get(ColumnMinimumInvestment)
	require.True(t, ok)
	assert.InDelta(t, 220000.0/7, avgMin, 1e-9)
	assert.Equal(t, 7, res.Stats[ColumnMinimumInvestment].Count)
}

func TestRun_EmptySelection(t *testing.T) {
	criteria := openCriteria(domain.HorizonLong)
	criteria.Categories = []domain.Category{}

	res := Run(fullTable(), criteria)

	assert.Empty(t, res.CategoryFiltered)
	assert.Empty(t, res.Constrained)
	for _, col := range Columns {
		_, ok := res.Stats.Get(col)
		assert.False(t, ok, "column %s", col)
	}
}

func TestDefaultCriteria(t *testing.T) {
	cats := allCategories()
	c := DefaultCriteria(cats)

	assert.Equal(t, cats, c.Categories)
	assert.Zero(t, c.MinInvestment)
	assert.Zero(t, c.MinReturnPct)
	assert.Equal(t, 10, c.MaxRisk)
	assert.Equal(t, domain.HorizonShort, c.TimeHorizon)
	assert.False(t, c.InflationHedgeOnly)
	assert.NoError(t, c.Validate())

	cats[0] = "changed"
	assert.Equal(t, domain.CategoryEquities, c.Categories[0], "defaults must not alias the input slice")
}

func TestFilterCriteria_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *FilterCriteria)
		wantErr bool
	}{
		{"defaults", func(c *FilterCriteria) {}, false},
		{"upper bounds", func(c *FilterCriteria) { c.MinInvestment = 100000; c.MinReturnPct = 15; c.MaxRisk = 10 }, false},
		{"negative investment", func(c *FilterCriteria) { c.MinInvestment = -1 }, true},
		{"investment above slider", func(c *FilterCriteria) { c.MinInvestment = 100001 }, true},
		{"negative return", func(c *FilterCriteria) { c.MinReturnPct = -0.1 }, true},
		{"return above slider", func(c *FilterCriteria) { c.MinReturnPct = 15.5 }, true},
		{"nan return", func(c *FilterCriteria) { c.MinReturnPct = math.NaN() }, true},
		{"infinite return", func(c *FilterCriteria) { c.MinReturnPct = math.Inf(-1) }, true},
		{"negative risk", func(c *FilterCriteria) { c.MaxRisk = -1 }, true},
		{"risk above slider", func(c *FilterCriteria) { c.MaxRisk = 11 }, true},
		{"missing horizon", func(c *FilterCriteria) { c.TimeHorizon = "" }, true},
		{"unknown horizon", func(c *FilterCriteria) { c.TimeHorizon = "Forever" }, true},
		{"empty categories are valid", func(c *FilterCriteria) { c.Categories = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria(allCategories())
			tt.modify(&c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCriteria))
				return
			}
			assert.NoError(t, err)
		})
	}
}
