package main

import (
	"fmt"
	"log"

	"github.com/logrusorgru/aurora"

	"sfneuman.com/gridnav/agent/tabular/qlearning"
	"sfneuman.com/gridnav/environment/gridworld"
	"sfneuman.com/gridnav/experiment"
	"sfneuman.com/gridnav/experiment/tracker"
	"sfneuman.com/gridnav/experiment/trackers"
	"sfneuman.com/gridnav/replay"
	"sfneuman.com/gridnav/timestep"
	"sfneuman.com/gridnav/utils/progressbar"
)

func main() {
	var seed uint64 = 192382

	// Create the environment: the default 20x20 navigation map
	discount := 0.99
	g, _, err := gridworld.New(gridworld.DefaultSize,
		gridworld.DefaultObstacles(), discount)
	if err != nil {
		log.Fatalf("could not create gridworld: %v", err)
	}
	fmt.Println(g)

	// Create the learning algorithm
	config := qlearning.Config{
		LearningRate: 0.2,
		Epsilon:      1.0,
		EpsilonDecay: 0.99995,
		MinEpsilon:   0.01,
	}
	q, err := qlearning.New(g, config, seed)
	if err != nil {
		log.Fatalf("could not create agent: %v", err)
	}

	// Experiment
	episodes := 75_000
	stepLimit := 400
	returns := trackers.NewReturn("./returns.bin")
	chart := trackers.NewChart("Grid navigation learning curve",
		"./returns.html")
	e := experiment.NewOnline(g, q, episodes, stepLimit,
		[]tracker.Tracker{returns, chart})

	fmt.Println(aurora.Bold(fmt.Sprintf("Training for %d episodes...",
		episodes)))
	bar := progressbar.New(65, episodes)
	for i := 1; ; i++ {
		done := e.RunEpisode()
		bar.Increment()
		if i%5000 == 0 {
			bar.Display()
			fmt.Println(aurora.Cyan(fmt.Sprintf("  episode %d  ε = %.3f",
				i, q.Epsilon())))
		}
		if done {
			break
		}
	}
	e.Save()
	fmt.Println(aurora.Green("Training complete"))

	data := tracker.LoadData("./returns.bin")
	fmt.Printf("Final episodic returns: %v\n", data[len(data)-10:])

	// Replay the learned policy greedily, printing the path an
	// external display sink would render
	rollout, err := replay.New(g, q, 200)
	if err != nil {
		log.Fatalf("could not create rollout: %v", err)
	}

	for {
		frame, ok := rollout.Next()
		if !ok {
			break
		}
		fmt.Println(frame)
	}

	switch rollout.EndType() {
	case timestep.Goal:
		fmt.Println(aurora.Green("Reached the goal"))
	case timestep.Failure:
		fmt.Println(aurora.Red("Stepped onto an obstacle"))
	default:
		fmt.Println(aurora.Yellow("Ran out of steps before terminating"))
	}
}
