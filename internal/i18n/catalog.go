package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

// Message keys.
const (
	KeyErrorTitle   = "error.title"
	KeyErrorMessage = "error.message"
	KeyErrorReload  = "error.reload"

	KeyState        = "table.state"
	KeyPopulation   = "table.population"
	KeyGrowthRate   = "table.growthRate"
	KeyMedianIncome = "table.medianIncome"
	KeyUnemployment = "table.unemploymentRate"

	KeyAgeGroup   = "chart.ageGroup"
	KeyMale       = "chart.male"
	KeyFemale     = "chart.female"
	KeyTotal      = "chart.total"
	KeyCategory   = "chart.category"
	KeyPercentage = "chart.percentage"
	KeyYear       = "chart.year"
	KeyUrban      = "chart.urban"

	KeyStateRanking    = "title.stateRanking"
	KeyAgeDistribution = "title.ageDistribution"
	KeyRaceComposition = "title.raceComposition"
	KeyPopulationTrend = "title.populationTrend"
)

var entries = map[string][2]string{ // key: {en, zh}
	KeyErrorTitle:   {"Data Loading Failed", "数据加载失败"},
	KeyErrorMessage: {"Unable to load Census data. Please check API key configuration or try again later.", "无法加载 Census 数据。请检查 API 密钥配置或稍后重试。"},
	KeyErrorReload:  {"Reload", "重新加载"},

	KeyState:        {"State", "州"},
	KeyPopulation:   {"Population", "人口"},
	KeyGrowthRate:   {"Growth Rate", "增长率"},
	KeyMedianIncome: {"Median Income", "收入中位数"},
	KeyUnemployment: {"Unemployment Rate", "失业率"},

	KeyAgeGroup:   {"Age Group", "年龄组"},
	KeyMale:       {"Male", "男性"},
	KeyFemale:     {"Female", "女性"},
	KeyTotal:      {"Total", "合计"},
	KeyCategory:   {"Category", "类别"},
	KeyPercentage: {"Percentage", "百分比"},
	KeyYear:       {"Year", "年份"},
	KeyUrban:      {"Urban (%%)", "城镇化率 (%%)"},

	KeyStateRanking:    {"State Population Rankings (Top 10)", "各州人口排名 (前10)"},
	KeyAgeDistribution: {"Age Distribution (Millions)", "年龄分布 (百万)"},
	KeyRaceComposition: {"Racial Composition", "种族构成"},
	KeyPopulationTrend: {"Historical Population Trend (Millions)", "历史人口趋势 (百万)"},

	raceKey(model.RaceWhite):    {"White", "白人"},
	raceKey(model.RaceHispanic): {"Hispanic/Latino", "拉丁裔"},
	raceKey(model.RaceBlack):    {"Black/African American", "非裔"},
	raceKey(model.RaceAsian):    {"Asian", "亚裔"},
	raceKey(model.RaceOther):    {"Other", "其他"},
}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msgs := range entries {
		_ = b.SetString(language.English, key, msgs[0])
		_ = b.SetString(language.SimplifiedChinese, key, msgs[1])
	}
	return b
}

func raceKey(k model.RaceKey) string {
	return "race." + string(k)
}

// Printer returns a message printer for l. Besides catalog lookups it
// formats numbers with locale grouping.
func Printer(l Language) *message.Printer {
	return message.NewPrinter(l.Tag(), message.Catalog(cat))
}

// T returns the catalog string for key in l. Unknown keys are returned as-is.
func T(l Language, key string) string {
	return Printer(l).Sprintf(key)
}

// RaceLabel returns the display label for a race category.
func RaceLabel(l Language, k model.RaceKey) string {
	return T(l, raceKey(k))
}

// Unavailable is the user-facing text shown when a fetch cycle fails.
type Unavailable struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Reload  string `json:"reload"`
}

// UnavailableMessage returns the failure text in l.
func UnavailableMessage(l Language) Unavailable {
	p := Printer(l)
	return Unavailable{
		Title:   p.Sprintf(KeyErrorTitle),
		Message: p.Sprintf(KeyErrorMessage),
		Reload:  p.Sprintf(KeyErrorReload),
	}
}
