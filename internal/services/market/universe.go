package market

// stockUniverse is the fixed large-cap equity set analyzed by TopPerformers.
var stockUniverse = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK-B",
	"JPM", "V", "UNH", "XOM", "JNJ", "WMT", "MA", "PG",
	"HD", "COST", "ORCL", "CVX", "ABBV", "KO", "PEP", "BAC",
}

// equityFunds and bondFunds together form the fixed fund universe analyzed
// by TopFunds.
var equityFunds = []string{
	"VFIAX", "VTSAX", "SWPPX", "FXAIX", "VGTSX",
	"VWIGX", "VSMAX", "VIMAX", "VWELX", "VWINX",
}

var bondFunds = []string{
	"BND", "AGG", "VBTLX", "TLT", "IEF",
	"LQD", "HYG", "MUB", "VTIP", "TIP",
}

// fundUniverse returns the combined fund symbol list, equity funds first.
func fundUniverse() []string {
	out := make([]string, 0, len(equityFunds)+len(bondFunds))
	out = append(out, equityFunds...)
	out = append(out, bondFunds...)
	return out
}
