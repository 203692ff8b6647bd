package collector

// sp500Symbols lists the top S&P 500 constituents, ordered roughly by index
// weight. Maintained by hand; membership churns a handful of times per year.
// Currently covers the top 200: scans requesting more examine the whole list
// and report the actual count.
var sp500Symbols = []string{
	"AAPL", "MSFT", "NVDA", "AMZN", "META", "GOOGL", "GOOG", "BRK-B", "AVGO", "TSLA",
	"LLY", "JPM", "UNH", "XOM", "V", "MA", "PG", "COST", "JNJ", "HD",
	"WMT", "ABBV", "NFLX", "MRK", "BAC", "CRM", "AMD", "ORCL", "CVX", "KO",
	"ADBE", "PEP", "TMO", "ACN", "LIN", "MCD", "WFC", "CSCO", "ABT", "QCOM",
	"IBM", "GE", "TXN", "CAT", "DHR", "INTU", "AMGN", "VZ", "DIS", "PFE",
	"PM", "NOW", "AMAT", "NEE", "ISRG", "GS", "RTX", "UNP", "CMCSA", "SPGI",
	"UBER", "T", "LOW", "HON", "COP", "AXP", "BKNG", "ELV", "MS", "SYK",
	"LMT", "BLK", "TJX", "VRTX", "PLD", "ETN", "PGR", "C", "MDT", "REGN",
	"BX", "CB", "ADP", "MMC", "PANW", "CI", "AMT", "DE", "LRCX", "SBUX",
	"BSX", "MU", "FI", "MDLZ", "SCHW", "GILD", "ADI", "BMY", "KLAC", "TMUS",
	"SO", "MO", "ICE", "DUK", "ZTS", "SNPS", "INTC", "CL", "CDNS", "EQIX",
	"SHW", "WM", "CME", "ITW", "NOC", "GD", "CVS", "TGT", "ANET", "MCK",
	"EOG", "USB", "CSX", "PNC", "APH", "BDX", "MMM", "FDX", "ABNB", "ORLY",
	"PYPL", "AON", "WELL", "MPC", "EMR", "ECL", "MAR", "CARR", "PH", "AJG",
	"TDG", "ROP", "NSC", "PSX", "HLT", "NXPI", "MNST", "CEG", "APD", "COF",
	"AIG", "MET", "TRV", "SPG", "AFL", "SLB", "O", "DLR", "GM", "F",
	"KMB", "HUM", "SRE", "AEP", "STZ", "TFC", "PSA", "MSI", "ROST", "DXCM",
	"NEM", "PCAR", "TEL", "EW", "OKE", "AZO", "IDXX", "CMI", "JCI", "D",
	"EXC", "KR", "A", "AME", "PAYX", "FAST", "CTAS", "VRSK", "GWW", "LULU",
	"YUM", "CHTR", "OTIS", "KMI", "CPRT", "DOW", "FTNT", "DD", "RSG", "EA",
}
