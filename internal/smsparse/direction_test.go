package smsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/smsledger/internal/model"
)

func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		text string
		want model.Direction
	}{
		{"Rs.500 credited to your a/c", model.DirectionIncoming},
		{"You have received Rs.500 from Ravi", model.DirectionIncoming},
		{"Cashback of Rs.20 added", model.DirectionIncoming},
		{"REFUND of Rs.99 processed", model.DirectionIncoming},
		{"received Rs.500 from Ravi, later debited Rs.100", model.DirectionIncoming},
		{"Rs.100 debited, refund of Rs.100 credited", model.DirectionOutgoing},
		{"Rs.250 spent on your credit card", model.DirectionOutgoing},
		{"Rs.1,200.00 debited from a/c", model.DirectionOutgoing},
		{"Rs.100 at STORE", model.DirectionOutgoing},
		{"", model.DirectionOutgoing},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyDirection(tt.text), "ClassifyDirection(%q)", tt.text)
	}
}

func TestDirectionAt_TieIsOutgoing(t *testing.T) {
	assert.Equal(t, model.DirectionOutgoing, directionAt(7, 7))
	assert.Equal(t, model.DirectionIncoming, directionAt(3, 7))
	assert.Equal(t, model.DirectionIncoming, directionAt(3, -1))
	assert.Equal(t, model.DirectionOutgoing, directionAt(9, 7))
	assert.Equal(t, model.DirectionOutgoing, directionAt(-1, -1))
	assert.Equal(t, model.DirectionOutgoing, directionAt(-1, 2))
}

func TestFirstIndex(t *testing.T) {
	assert.Equal(t, 4, firstIndex("rs. debited credited", []string{"credited", "debit"}))
	assert.Equal(t, -1, firstIndex("nothing here", incomingKeywords))
}
