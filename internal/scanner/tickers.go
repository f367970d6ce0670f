package scanner

// DefaultTickers is the scan universe: large caps, high-beta names, meme
// stocks, crypto pairs, FX pairs and futures. Suffix conventions follow the
// quote provider ("-USD" crypto, "=X" FX, "=F" futures).
var DefaultTickers = []string{
	// Mega caps
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK-B", "JPM", "V",
	"UNH", "XOM", "JNJ", "WMT", "PG", "MA", "HD", "CVX", "ABBV", "KO",

	// Tech and growth
	"AMD", "INTC", "CRM", "ORCL", "ADBE", "NFLX", "QCOM", "AVGO", "TXN", "MU",
	"PLTR", "SNOW", "SHOP", "SQ", "PYPL", "UBER", "ABNB", "COIN", "RBLX", "NET",
	"CRWD", "DDOG", "ZS", "MDB", "SOFI", "HOOD", "DKNG", "RIVN", "LCID", "NIO",

	// Meme favourites
	"GME", "AMC", "BB", "SPCE", "WISH", "CLOV", "MULN",

	// Energy, industrials, finance
	"BA", "CAT", "GE", "F", "GM", "DAL", "UAL", "OXY", "SLB", "HAL",
	"BAC", "WFC", "C", "GS", "MS", "SCHW",

	// Healthcare and consumer
	"PFE", "MRNA", "LLY", "BMY", "CVS", "TGT", "COST", "NKE", "SBUX", "MCD",

	// ETFs
	"SPY", "QQQ", "IWM", "DIA", "XLF", "XLE", "XLK", "ARKK", "GDX", "TLT",

	// Crypto
	"BTC-USD", "ETH-USD", "SOL-USD", "XRP-USD", "DOGE-USD", "ADA-USD", "AVAX-USD", "LINK-USD",

	// FX
	"EURUSD=X", "GBPUSD=X", "USDJPY=X", "AUDUSD=X", "USDCAD=X", "USDCHF=X",

	// Futures
	"GC=F", "SI=F", "CL=F", "NG=F", "ES=F", "NQ=F",
}
