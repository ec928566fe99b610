package auction

import "math"

// priceMultipliers maps pilot tier to the fraction of base salary a line
// item opens at. Tier 1 is the strongest and the most expensive.
var priceMultipliers = map[int]float64{
	1: 0.8,
	2: 0.6,
	3: 0.4,
	4: 0.3,
	5: 0.2,
}

// coinCosts maps pilot tier to the coin cost of the opening bid.
var coinCosts = map[int]int64{
	1: 50,
	2: 20,
	3: 8,
	4: 3,
	5: 1,
}

// StartPrice derives a line item's opening price from the pilot's base
// salary, rounded to the nearest whole unit.
func StartPrice(baseSalary int64, tier int) int64 {
	mult, ok := priceMultipliers[tier]
	if !ok {
		mult = priceMultipliers[5]
	}
	return int64(math.Round(float64(baseSalary) * mult))
}

// StartCoins returns the coin cost of a line item's opening bid.
func StartCoins(tier int) int64 {
	if coins, ok := coinCosts[tier]; ok {
		return coins
	}
	return 1
}
