package entity

// drain lowers *cur by amount without going below zero and returns what was removed.
func drain(cur *int, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, *cur)
	*cur -= actual
	return actual
}

// fill raises *cur by amount without exceeding maxValue and returns what was added.
func fill(cur *int, maxValue, amount int) int {
	if amount <= 0 || *cur >= maxValue {
		return 0
	}
	actual := min(amount, maxValue-*cur)
	*cur += actual
	return actual
}

// spend lowers *cur by amount only when enough is available.
func spend(cur *int, amount int) bool {
	if amount < 0 || *cur < amount {
		return false
	}
	*cur -= amount
	return true
}
