package wellness

import "math"

var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

const goalAdjustment = 500

// BMI is weight over height squared, rounded to one decimal.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR uses the revised Harris-Benedict equations. Anything other than
// "male" takes the female coefficients.
func BMR(heightCm, weightKg float64, age int, gender string) float64 {
	a := float64(age)
	if gender == "male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*a
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*a
}

// DailyCalories scales BMR by activity and shifts it 500 kcal toward the goal.
// Unknown activity levels count as moderate.
func DailyCalories(heightCm, weightKg float64, age int, gender, activity, goal string) float64 {
	mult, ok := activityMultipliers[activity]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	cal := BMR(heightCm, weightKg, age, gender) * mult
	switch goal {
	case "lose":
		cal -= goalAdjustment
	case "gain":
		cal += goalAdjustment
	}
	return cal
}

// MacroSplit is 30% protein, 50% carbs and 20% fat by energy.
func MacroSplit(calories float64) (protein, carbs, fats int) {
	protein = int(math.Round(calories * 0.3 / 4))
	carbs = int(math.Round(calories * 0.5 / 4))
	fats = int(math.Round(calories * 0.2 / 9))
	return
}

// WaterMl is 33 ml per kilogram of body weight.
func WaterMl(weightKg float64) int {
	return int(math.Round(weightKg * 33))
}
