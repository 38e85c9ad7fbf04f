package mechanics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Newton's second law", func() {
	Describe("NetForce", func() {
		It("is independent of summation order", func() {
			forces := ForceSystem{{10, 0}, {25, 33}, {4, 181}, {17, -95}, {8, 270}}
			fx, fy := NetForce(forces)

			reversed := make(ForceSystem, len(forces))
			for i, f := range forces {
				reversed[len(forces)-1-i] = f
			}
			rx, ry := NetForce(reversed)

			Expect(rx).To(BeNumerically("~", fx, 1e-9))
			Expect(ry).To(BeNumerically("~", fy, 1e-9))
		})

		It("groups partial sums the same way", func() {
			a := ForceSystem{{3, 10}, {9, 100}}
			b := ForceSystem{{6, 220}, {2, 300}}
			ax, ay := NetForce(a)
			bx, by := NetForce(b)
			fx, fy := NetForce(append(append(ForceSystem{}, a...), b...))

			Expect(fx).To(BeNumerically("~", ax+bx, 1e-9))
			Expect(fy).To(BeNumerically("~", ay+by, 1e-9))
		})
	})

	Describe("Resultant", func() {
		It("reports direction 0 for the zero vector", func() {
			mag, dir := Resultant(0, 0)
			Expect(mag).To(BeZero())
			Expect(dir).To(BeZero())
		})

		It("solves the 3-4-5 triangle", func() {
			mag, dir := Resultant(3, 4)
			Expect(mag).To(Equal(5.0))
			Expect(dir).To(BeNumerically("~", 53.13, 0.01))
		})
	})

	Describe("Acceleration", func() {
		DescribeTable("rejects non-positive mass",
			func(mass float64) {
				_, err := Acceleration(10, mass)
				Expect(err).To(MatchError(ErrInvalidMass))
			},
			Entry("zero", 0.0),
			Entry("negative", -5.0),
		)

		It("divides by positive mass", func() {
			Expect(Acceleration(9, 3)).To(Equal(3.0))
		})
	})

	Describe("ResolveIncline", func() {
		It("slides on a 30 degree ramp with low friction", func() {
			r := ResolveIncline(10, 30, 0.3, 0.2)
			Expect(r.State).To(Equal(Sliding))
			Expect(r.Weight).To(BeNumerically("~", 98.1, 1e-9))
			Expect(r.Driving).To(BeNumerically("~", 49.05, 1e-9))
			Expect(r.Driving).To(BeNumerically(">", r.MaxStatic))
			Expect(r.Acceleration).To(BeNumerically("~", 3.21, 0.005))
		})

		It("stays at rest on level ground", func() {
			r := ResolveIncline(3, 0, 0.3, 0.2)
			Expect(r.State).To(Equal(Static))
			Expect(r.Acceleration).To(BeZero())
		})

		It("is idempotent", func() {
			Expect(ResolveIncline(7.3, 41, 0.6, 0.45)).To(Equal(ResolveIncline(7.3, 41, 0.6, 0.45)))
		})
	})

	Describe("ResolveAppliedForce", func() {
		It("moves when the push beats static friction", func() {
			r := ResolveAppliedForce(10, 50, 0, 0.4, 0.3)
			Expect(r.State).To(Equal(Kinetic))
			Expect(r.Friction).To(BeNumerically("~", 29.43, 1e-9))
			Expect(r.Acceleration).To(BeNumerically("~", 2.057, 1e-9))
		})

		It("reduces the normal force when pulling upward", func() {
			r := ResolveAppliedForce(10, 50, 30, 0.4, 0.3)
			Expect(r.Lift).To(BeNumerically("~", 25, 1e-9))
			Expect(r.Normal).To(BeNumerically("~", 98.1-25, 1e-9))
			Expect(r.Liftoff).To(BeFalse())
		})

		It("leaves a negative normal force unclamped", func() {
			r := ResolveAppliedForce(1, 50, 90, 0.4, 0.3)
			Expect(r.Normal).To(BeNumerically("<", 0))
			Expect(r.Liftoff).To(BeTrue())
			Expect(math.IsNaN(r.Acceleration)).To(BeFalse())
		})
	})
})
