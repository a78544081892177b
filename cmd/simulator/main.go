package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/config"
)

type reading struct {
	AssetID        string    `json:"asset_id"`
	EquipmentID    string    `json:"equipment_id"`
	Timestamp      time.Time `json:"timestamp"`
	OperatingHours float64   `json:"operating_hours"`
	CycleCount     float64   `json:"cycle_count"`
	Temperature    float64   `json:"temperature"`
	Vibration      float64   `json:"vibration"`
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	hours := 14250.0
	cycles := 11800.0
	for i := 0; i < 100; i++ {
		hours += 0.1
		cycles += 1
		r := reading{
			AssetID:        "mv-nordkapp",
			EquipmentID:    "crane1-hoist-rope",
			Timestamp:      time.Now(),
			OperatingHours: hours,
			CycleCount:     cycles,
			Temperature:    35 + rand.Float64()*10,
			Vibration:      7 + rand.Float64()*3,
		}
		payload, _ := json.Marshal(r)
		token := client.Publish("fleet/telemetry", 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
