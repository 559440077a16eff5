package service

import "zerodefect-backend/models"

// Status changes move forward only. Skipping ahead is allowed (pending can
// go straight to completed); moving back is not. Orders may additionally be
// cancelled from any non-terminal state; cancelled and delivered are
// terminal.

var inquiryRank = map[string]int{
	models.InquiryPending:   0,
	models.InquiryReviewed:  1,
	models.InquiryCompleted: 2,
}

var orderRank = map[string]int{
	models.OrderPending:   0,
	models.OrderShipped:   1,
	models.OrderDelivered: 2,
}

func validInquiryTransition(from, to string) bool {
	f, okF := inquiryRank[from]
	t, okT := inquiryRank[to]
	return okF && okT && t >= f
}

func validOrderTransition(from, to string) bool {
	if from == models.OrderCancelled {
		return to == models.OrderCancelled
	}
	if to == models.OrderCancelled {
		return from != models.OrderDelivered
	}
	f, okF := orderRank[from]
	t, okT := orderRank[to]
	return okF && okT && t >= f
}
