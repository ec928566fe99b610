package race

import (
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

const minLapTime = 45.0

var failures = []string{
	"ENGINE_FAILURE",
	"GEARBOX_FAILURE",
	"SUSPENSION_FAILURE",
	"BRAKE_FAILURE",
	"CRASH",
	"PUNCTURE",
}

var tracks = []string{
	"Monaco", "Silverstone", "Spa-Francorchamps", "Monza", "Suzuka",
	"Interlagos", "Nürburgring", "Circuit de Barcelona", "Hungaroring",
}

// weatherDraws skews the draw towards dry races.
var weatherDraws = []models.Weather{
	models.WeatherDry, models.WeatherDry, models.WeatherDry,
	models.WeatherWet, models.WeatherMixed,
}

// Entry is one participant fed into the simulation.
type Entry struct {
	TeamID  uuid.UUID
	PilotID uuid.UUID
	Pilot   models.Pilot
	Car     models.Car
}

// Outcome is one participant's simulated classification.
type Outcome struct {
	TeamID    uuid.UUID
	PilotID   uuid.UUID
	Position  int
	TotalTime float64
	LapTimes  []float64
	DNF       bool
	DNFReason string
}

// Engine runs lap-by-lap race simulations.
type Engine struct {
	rng *rand.Rand
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Simulate races every entry over the given laps and classifies them by
// total time, DNFs last. A failed reliability check before any lap retires
// the car with zero total time.
func (e *Engine) Simulate(entries []Entry, weather models.Weather, laps int) []Outcome {
	outcomes := make([]Outcome, len(entries))

	for i, entry := range entries {
		outcome := Outcome{
			TeamID:  entry.TeamID,
			PilotID: entry.PilotID,
		}

		for lap := 1; lap <= laps; lap++ {
			if e.rng.Float64()*100 > float64(entry.Car.Reliability) {
				outcome.DNF = true
				outcome.DNFReason = failures[e.rng.Intn(len(failures))]
				break
			}
			outcome.LapTimes = append(outcome.LapTimes, e.lapTime(entry, weather, lap, laps))
		}

		if !outcome.DNF {
			for _, t := range outcome.LapTimes {
				outcome.TotalTime += t
			}
		}

		outcomes[i] = outcome
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		if outcomes[i].DNF != outcomes[j].DNF {
			return !outcomes[i].DNF
		}
		return outcomes[i].TotalTime < outcomes[j].TotalTime
	})
	for i := range outcomes {
		outcomes[i].Position = i + 1
	}

	return outcomes
}

// lapTime mixes pilot and car stats into one lap. Every stat contributes
// relative to the 50-point baseline; wet races slow everyone down unless
// the pilot's wet skill compensates.
func (e *Engine) lapTime(entry Entry, weather models.Weather, currentLap, totalLaps int) float64 {
	baseLapTime := 80 + e.rng.Float64()*20

	paceBonus := float64(entry.Pilot.Pace-50) * 0.4
	tireBonus := float64(entry.Pilot.TireManagement-50) * 0.2

	engineBonus := float64(entry.Car.Engine-50) * 0.3
	aeroBonus := float64(entry.Car.Aero-50) * 0.2
	chassisBonus := float64(entry.Car.Chassis-50) * 0.1

	weatherMultiplier := 1.0
	if weather == models.WeatherWet {
		wetSkillBonus := float64(entry.Pilot.WetSkill-50) * 0.01
		weatherMultiplier = 1.2 + wetSkillBonus
	}

	// Later laps run slower as tires wear, up to 5 seconds, softened by
	// the pilot's tire management.
	tireWear := float64(currentLap) / float64(totalLaps) * 5
	tireWearReduction := float64(entry.Pilot.TireManagement) / 100 * tireWear

	randomFactor := (e.rng.Float64() - 0.5) * 4

	finalTime := (baseLapTime - paceBonus - tireBonus - engineBonus - aeroBonus - chassisBonus + tireWear - tireWearReduction + randomFactor) * weatherMultiplier

	return math.Max(minLapTime, finalTime)
}

// RandomTrack picks a circuit for a quick race.
func (e *Engine) RandomTrack() string {
	return tracks[e.rng.Intn(len(tracks))]
}

// RandomWeather draws race weather, dry three times out of five.
func (e *Engine) RandomWeather() models.Weather {
	return weatherDraws[e.rng.Intn(len(weatherDraws))]
}

// RandomTemperature draws the ambient temperature in Celsius, 15 to 34.
func (e *Engine) RandomTemperature() int {
	return 15 + e.rng.Intn(20)
}
