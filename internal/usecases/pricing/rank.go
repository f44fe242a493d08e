package pricing

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

type RankSolution struct {
	Price         float64
	Positioning   string
	RequestedRank int
	AchievedRank  int
	Clamped       bool
}

// SolveForRank encontra o preço que coloca o hotel na posição pedida (1 = mais caro)
// entre os concorrentes. Se o limite de preço do hotel impedir a posição, a posição
// efetivamente alcançada é informada.
//
// AchievedRank também pode ser melhor que a posição pedida sem que haja limite de preço:
// com vizinhos empatados o ponto médio é igual ao empate, e um último colocado com preço
// de poucos centavos arredonda para o mesmo valor. Em ambos os casos nenhum concorrente
// fica estritamente acima do preço calculado e a solução informa a posição real.
func (e *Engine) SolveForRank(desiredRank int, competitors []domain.CompetitorRate, hotel domain.HotelConfig) (RankSolution, error) {
	if err := ValidateHotel(hotel); err != nil {
		return RankSolution{}, err
	}

	prices := CompetitorPrices(competitors)
	if len(prices) == 0 {
		return RankSolution{}, errors.Wrap(ErrInsufficientData, "no competitor prices to rank against")
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(prices)))

	n := len(prices)
	if desiredRank < 1 || desiredRank > n+1 {
		return RankSolution{}, errors.Wrapf(ErrInvalidRank, "rank %d outside [1,%d]", desiredRank, n+1)
	}

	offset := e.policy.RankOffset

	var target float64
	switch desiredRank {
	case 1:
		target = prices[0] * (1 + offset)
	case n + 1:
		target = prices[n-1] * (1 - offset)
	default:
		target = (prices[desiredRank-2] + prices[desiredRank-1]) / 2
	}

	rounded := round2(target)
	price := utils.Clamp(rounded, hotel.MinPrice, hotel.MaxPrice)

	achieved := AchievedRank(price, prices)

	return RankSolution{
		Price:         price,
		Positioning:   RankPositioning(achieved, n),
		RequestedRank: desiredRank,
		AchievedRank:  achieved,
		Clamped:       price != rounded,
	}, nil
}

// AchievedRank é 1 + quantidade de concorrentes com preço estritamente maior
func AchievedRank(price float64, competitorPrices []float64) int {
	rank := 1
	for _, p := range competitorPrices {
		if p > price {
			rank++
		}
	}
	return rank
}

// RankPositioning usa o percentil da posição entre N+1 vagas: até 30% premium, até 70% competitivo
func RankPositioning(rank, competitorCount int) string {
	slots := float64(competitorCount + 1)
	pct := float64(rank) / slots
	switch {
	case pct <= 0.30:
		return "premium"
	case pct <= 0.70:
		return "competitive"
	default:
		return "value"
	}
}
