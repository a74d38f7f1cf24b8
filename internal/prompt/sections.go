package prompt

import (
	"fmt"

	"github.com/stravalyze/stravalyze/internal/model"
)

// section renders the category-specific body: its own profile fields with
// their fallback placeholders, the workout-data header, and the numbered
// analysis requests. The switch is exhaustive over the taxonomy.
func section(c Category, p model.PromptProfile, activityCount int) string {
	data := workoutData(activityCount)

	switch c {
	case CategoryPerformance:
		return fmt.Sprintf(`
- Current Fitness Goals: %s
- Areas of Focus: %s

%s

## Performance Analysis Request
Please provide detailed analysis focusing on:
1. **Performance Metrics Trends**: Speed, power, heart rate, pace improvements
2. **Training Load Analysis**: Volume vs intensity balance, periodization
3. **Efficiency Metrics**: Running economy, cycling power efficiency, swimming stroke rate
4. **Peak Performance Identification**: Best performances and what led to them
5. **Plateau Analysis**: Identify performance plateaus and breakthrough strategies
6. **Training Zones**: Current fitness zones and optimization recommendations
7. **Comparative Analysis**: Performance relative to age group and experience level
8. **Specific Improvements**: Concrete steps to achieve next performance level`,
			orElse(p.Goals, "[DESCRIBE YOUR PERFORMANCE GOALS]"),
			orElse(p.InjuryHistory, "[WHAT ASPECTS OF PERFORMANCE DO YOU WANT TO IMPROVE?]"),
			data)

	case CategoryNutrition:
		return fmt.Sprintf(`
- Current Weight: %s
- Dietary Restrictions: %s
- Fitness Goals: %s

%s

## Nutrition Analysis Request
Please provide nutrition guidance based on my training data:
1. **Caloric Needs**: Daily calorie requirements based on training volume
2. **Macronutrient Distribution**: Protein, carbs, fats for my training style
3. **Pre-Workout Nutrition**: Fueling strategies for different workout types
4. **Post-Workout Recovery**: Optimal nutrition for recovery and adaptation
5. **Race Day Fueling**: Nutrition strategy for long events (if applicable)
6. **Hydration Guidelines**: Fluid needs based on training intensity and duration
7. **Supplement Recommendations**: Evidence-based supplements for my goals
8. **Meal Timing**: When to eat around training sessions
9. **Body Composition**: Nutrition strategies for body composition goals`,
			orElse(p.CurrentWeight, orElse(p.Weight, "[CURRENT WEIGHT IN KG]")),
			orElse(p.DietaryRestrictions, "[ANY DIETARY RESTRICTIONS OR PREFERENCES]"),
			orElse(p.Goals, "[YOUR FITNESS AND BODY COMPOSITION GOALS]"),
			data)

	case CategoryRacePrep:
		return fmt.Sprintf(`
- Target Race/Event: %s
- Current Fitness Goals: %s
- Experience Level: %s

%s

## Race Preparation Analysis
Please provide a race-focused training analysis:
1. **Current Fitness Assessment**: Readiness for target event based on recent training
2. **Training Periodization**: How to structure training leading up to race
3. **Workout Specificity**: Race-specific sessions to include in training
4. **Taper Strategy**: How to reduce volume while maintaining fitness
5. **Race Pacing Strategy**: Optimal pacing based on current fitness
6. **Weakness Identification**: Areas that need focus before race day
7. **Race Day Preparation**: Logistics, nutrition, and mental preparation
8. **Goal Setting**: Realistic time goals based on current fitness
9. **Backup Plans**: Alternative strategies if conditions change`,
			orElse(p.RaceGoal, "[DESCRIBE YOUR TARGET RACE OR EVENT]"),
			orElse(p.Goals, "[YOUR RACE-SPECIFIC GOALS AND TARGETS]"),
			orElse(p.Experience, "[YOUR RACING EXPERIENCE]"),
			data)

	case CategoryInjuryPrevention:
		return fmt.Sprintf(`
- Injury History: %s
- Current Issues: %s

%s

## Injury Prevention Analysis
Please provide injury prevention guidance:
1. **Risk Factor Analysis**: Based on training patterns and history
2. **Training Load Assessment**: Volume increases and recovery adequacy
3. **Movement Pattern Analysis**: Common issues for my sport/activity mix
4. **Recovery Evaluation**: Rest days, sleep, and recovery practices
5. **Strength Training**: Specific exercises to prevent common injuries
6. **Flexibility & Mobility**: Stretching and mobility work recommendations
7. **Load Management**: How to safely progress training volume/intensity
8. **Warning Signs**: What to watch for to prevent injury escalation
9. **Cross-Training**: Low-impact alternatives for recovery days`,
			orElse(p.InjuryHistory, "[DESCRIBE ANY PAST INJURIES OR CURRENT CONCERNS]"),
			orElse(p.Goals, "[ANY CURRENT ACHES, PAINS, OR CONCERNS]"),
			data)

	case CategoryWeightManagement:
		return fmt.Sprintf(`
- Current Weight: %s
- Target Weight: %s
- Goals: %s

%s

## Weight Management Analysis
Please provide weight management guidance:
1. **Calorie Burn Analysis**: Average calories burned through exercise
2. **Exercise Efficiency**: Best activities for weight management goals
3. **Training Recommendations**: Optimal mix of cardio and strength training
4. **Metabolic Impact**: How current training affects metabolism
5. **Sustainable Approach**: Long-term strategies that work with lifestyle
6. **Progress Tracking**: Metrics beyond the scale to monitor success
7. **Plateau Solutions**: Strategies when weight loss stalls
8. **Muscle Preservation**: Maintaining lean mass during weight loss
9. **Integration Tips**: Combining nutrition and exercise for best results`,
			orElse(p.CurrentWeight, orElse(p.Weight, "[CURRENT WEIGHT IN KG]")),
			orElse(p.TargetWeight, "[TARGET WEIGHT IN KG]"),
			orElse(p.Goals, "[WEIGHT AND BODY COMPOSITION GOALS]"),
			data)

	case CategoryEndurance:
		return fmt.Sprintf(`
- Endurance Goals: %s
- Current Limitations: %s

%s

## Endurance Building Analysis
Please provide endurance-focused guidance:
1. **Aerobic Base Assessment**: Current cardiovascular fitness level
2. **Progressive Overload**: How to safely increase endurance capacity
3. **Training Zones**: Heart rate zones for optimal endurance development
4. **Long Session Strategy**: Building tolerance for longer efforts
5. **Recovery Optimization**: Balancing stress and adaptation for endurance gains
6. **Fuel Utilization**: Improving fat burning efficiency for endurance
7. **Mental Endurance**: Psychological strategies for longer efforts
8. **Periodization**: Structuring endurance training over time
9. **Cross-Training**: Activities that complement endurance development`,
			orElse(p.Goals, "[DESCRIBE YOUR ENDURANCE GOALS - DISTANCE, TIME, ETC.]"),
			orElse(p.InjuryHistory, "[WHAT CURRENTLY LIMITS YOUR ENDURANCE?]"),
			data)

	case CategoryStrength:
		return fmt.Sprintf(`
- Strength Goals: %s
- Current Training: %s

%s

## Strength & Power Analysis
Please provide strength training guidance:
1. **Current Strength Assessment**: Based on power data and performance
2. **Cardio-Strength Integration**: Balancing endurance and strength training
3. **Sport-Specific Strength**: Exercises that directly improve performance
4. **Power Development**: Training explosive power for my activities
5. **Injury Prevention**: Strength exercises to address common weaknesses
6. **Periodization**: How to cycle strength work with cardio training
7. **Recovery Management**: Balancing strength and endurance recovery
8. **Progressive Loading**: How to safely increase strength training load
9. **Equipment Needs**: Minimal equipment solutions for strength training`,
			orElse(p.Goals, "[DESCRIBE YOUR STRENGTH AND POWER GOALS]"),
			orElse(p.InjuryHistory, "[CURRENT STRENGTH TRAINING IF ANY]"),
			data)

	default: // CategoryGeneral
		return fmt.Sprintf(`
- Fitness Goals: %s
- Injury History: %s

%s

## Analysis Request
Please provide a comprehensive analysis including:
1. **Training Volume Analysis**: Weekly/monthly patterns, trends over time
2. **Performance Trends**: Speed, endurance, consistency improvements or declines
3. **Activity Distribution**: Balance between different workout types
4. **Recovery Patterns**: Rest days, intensity distribution
5. **Personalized Recommendations**: Based on my profile and goals
6. **Areas for Improvement**: Specific actionable advice
7. **Goal-Specific Guidance**: Tailored to my stated fitness objectives`,
			orElse(p.Goals, "[PLEASE DESCRIBE YOUR FITNESS GOALS]"),
			orElse(p.InjuryHistory, `[PLEASE DESCRIBE ANY INJURY HISTORY OR "NONE"]`),
			data)
	}
}
