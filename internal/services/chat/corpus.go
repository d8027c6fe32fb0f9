package chat

import "github.com/finpulse/finpulse/internal/models"

// tipsCorpus is the fixed in-process document set used for chat grounding
// and the tips endpoint.
var tipsCorpus = []models.TipDocument{
	{
		Title: "Build an emergency fund first",
		Body:  "Before investing, set aside three to six months of essential expenses in a high-yield savings account. This buffer keeps a job loss or surprise bill from forcing you to sell investments at a bad time.",
	},
	{
		Title: "Pay yourself first",
		Body:  "Automate a transfer to savings on payday, before discretionary spending. Even 10% of each paycheck compounds into a meaningful cushion within a few years.",
	},
	{
		Title: "The 50/30/20 budget",
		Body:  "Allocate roughly 50% of after-tax income to needs, 30% to wants, and 20% to savings and debt repayment. Adjust the ratios to your situation, but track where every dollar goes.",
	},
	{
		Title: "Track spending for one month",
		Body:  "Record every purchase for thirty days before building a budget. Most people underestimate recurring subscriptions and small daily purchases by a wide margin.",
	},
	{
		Title: "Pay off high-interest debt aggressively",
		Body:  "Credit card interest rates usually exceed any realistic investment return. Paying down a 24% APR balance is a guaranteed 24% return on every dollar applied.",
	},
	{
		Title: "The debt avalanche method",
		Body:  "List debts by interest rate and put every spare dollar toward the highest rate while paying minimums on the rest. This minimizes total interest paid over the payoff period.",
	},
	{
		Title: "The debt snowball method",
		Body:  "Pay off the smallest balance first for a quick psychological win, then roll that payment into the next smallest. Slightly more interest than the avalanche, but easier to sustain.",
	},
	{
		Title: "Capture the full employer match",
		Body:  "If your employer matches retirement contributions, contribute at least enough to receive the entire match. Leaving a 50% or 100% match on the table is declining free compensation.",
	},
	{
		Title: "Start retirement saving early",
		Body:  "A dollar invested at 25 has roughly twice the retirement value of one invested at 35, thanks to compounding. Start small if necessary, but start now.",
	},
	{
		Title: "Use tax-advantaged accounts in order",
		Body:  "A common priority: employer match first, then HSA if eligible, then Roth or traditional IRA, then back to the workplace plan up to its limit. Taxable brokerage comes after.",
	},
	{
		Title: "Roth versus traditional contributions",
		Body:  "Roth contributions are taxed now and withdrawn tax-free; traditional contributions are deducted now and taxed at withdrawal. Favor Roth when you expect higher tax rates in retirement.",
	},
	{
		Title: "Low-cost index funds beat most stock picking",
		Body:  "Over long horizons, broad index funds outperform the large majority of actively managed funds after fees. A total-market fund with an expense ratio under 0.1% is a strong default core holding.",
	},
	{
		Title: "Expense ratios compound against you",
		Body:  "A 1% annual fee sounds small but can consume a quarter of a portfolio's growth over thirty years. Compare expense ratios before buying any fund.",
	},
	{
		Title: "Diversify across asset classes",
		Body:  "Hold a mix of domestic stocks, international stocks, and bonds appropriate to your horizon. Diversification does not prevent losses, but it reduces the damage any single market can do.",
	},
	{
		Title: "Rebalance on a schedule",
		Body:  "Once or twice a year, restore your target allocation by trimming winners and adding to laggards. Scheduled rebalancing removes emotion from the decision.",
	},
	{
		Title: "Dollar-cost averaging",
		Body:  "Investing a fixed amount on a fixed schedule smooths out purchase prices and removes the temptation to time the market. It pairs naturally with payroll-based contributions.",
	},
	{
		Title: "Time in the market beats timing the market",
		Body:  "Missing just the ten best trading days in a decade can halve returns, and those days cluster near the worst ones. Stay invested through downturns rather than trying to trade around them.",
	},
	{
		Title: "Keep your bond allocation boring",
		Body:  "Bonds in a portfolio are for stability, not yield-chasing. Investment-grade and treasury funds with durations matched to your horizon do the job; reaching for high-yield adds equity-like risk.",
	},
	{
		Title: "Understand fund volatility before buying",
		Body:  "Annualized volatility tells you how bumpy the ride will be. A fund returning 8% with 20% volatility will regularly show double-digit drawdowns; make sure you can hold through them.",
	},
	{
		Title: "Harvest tax losses in taxable accounts",
		Body:  "Selling a losing position to realize the loss can offset capital gains and up to $3,000 of ordinary income per year. Mind the wash-sale rule: do not rebuy the same security within thirty days.",
	},
	{
		Title: "Hold investments past one year when you can",
		Body:  "Long-term capital gains rates are substantially lower than short-term rates, which match ordinary income. Waiting out the one-year mark often saves more than any timing gain.",
	},
	{
		Title: "Max out HSA contributions if eligible",
		Body:  "A health savings account is triple tax-advantaged: deductible going in, tax-free growth, and tax-free withdrawals for medical expenses. After 65 it behaves like a traditional IRA for any purpose.",
	},
	{
		Title: "Check your tax withholding annually",
		Body:  "A large refund means you lent the government money interest-free; a large bill can bring penalties. Adjust withholding after raises, side income, or family changes.",
	},
	{
		Title: "Review insurance before investing heavily",
		Body:  "Adequate health, disability, and term life coverage protects your plan from being wiped out by one event. Term life is cheap while you are young and healthy.",
	},
	{
		Title: "Avoid lifestyle inflation after raises",
		Body:  "Direct at least half of every raise to savings before spending adjusts. Keeping expenses flat while income grows is the fastest sustainable way to raise your savings rate.",
	},
	{
		Title: "Keep investing simple",
		Body:  "A three-fund portfolio of total domestic stock, total international stock, and total bond funds covers nearly everything. Complexity adds fees and mistakes more often than returns.",
	},
	{
		Title: "Ignore hot investment tips",
		Body:  "By the time an opportunity is widely discussed, its price reflects the attention. Chasing recent winners is one of the most reliable ways for retail investors to underperform.",
	},
}
