package backtest

// rsiSeries рассчитывает RSI напрямую, чтобы не зависеть от снапшота
// индикаторов: бэктесту нужна вся история, а не последнее значение.
// Первые period значений заполняются нейтральными 50.
func rsiSeries(closes []float64, period int) []float64 {
	rsi := make([]float64, 0, len(closes))
	if len(closes) < period+1 {
		for range closes {
			rsi = append(rsi, 50)
		}
		return rsi
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := 0; i < period; i++ {
		rsi = append(rsi, 50)
	}
	rsi = append(rsi, rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		var gain, loss float64
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		rsi = append(rsi, rsiFromAverages(avgGain, avgLoss))
	}

	return rsi
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}
