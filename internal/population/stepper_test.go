package population_test

import (
	"errors"
	"math"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ecosim/internal/population"
)

var _ = Describe("Simulate", func() {
	var cfg population.Config

	BeforeEach(func() {
		cfg = population.DefaultConfig()
	})

	Context("with the default configuration", func() {
		var res population.Result

		BeforeEach(func() {
			var err error
			res, err = population.Simulate(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces one record per year plus year zero", func() {
			Expect(res.Records).To(HaveLen(cfg.Years + 1))
			for i, rec := range res.Records {
				Expect(rec.Year).To(Equal(i))
			}
		})

		It("starts from the initial state verbatim", func() {
			Expect(res.Records[0]).To(Equal(population.YearRecord{Year: 0, Rabbits: 50, Wolves: 0}))
		})

		It("compounds rabbits with truncation before wolves arrive", func() {
			Expect(res.Records[1]).To(Equal(population.YearRecord{Year: 1, Rabbits: 55, Wolves: 0}))
			Expect(res.Records[2]).To(Equal(population.YearRecord{Year: 2, Rabbits: 60, Wolves: 0}))
			Expect(res.Records[3]).To(Equal(population.YearRecord{Year: 3, Rabbits: 66, Wolves: 0}))
			Expect(res.Records[4]).To(Equal(population.YearRecord{Year: 4, Rabbits: 72, Wolves: 0}))
		})

		It("applies the death rate in the introduction year", func() {
			count, death := float64(cfg.WolfIntroductionCount), cfg.WolfDeathRate
			Expect(res.Records[5].Wolves).To(Equal(int(count * (1 - death))))
			Expect(res.Records[5].Wolves).To(Equal(9))
		})

		It("applies predation once wolves are present", func() {
			// 72 * 1.1 = 79.2, then * 0.99 = 78.408
			Expect(res.Records[5].Rabbits).To(Equal(78))
		})

		It("ends at the known final state", func() {
			Expect(res.Final()).To(Equal(population.YearRecord{Year: 20, Rabbits: 266, Wolves: 9}))
		})

		It("is deterministic", func() {
			again, err := population.Simulate(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(res))
		})
	})

	It("keeps wolves extinct once the death rate wipes them out", func() {
		cfg.WolfDeathRate = 1.0
		cfg.Years = 40
		res, err := population.Simulate(cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, rec := range res.Records[cfg.WolfIntroductionYear:] {
			Expect(rec.Wolves).To(BeZero())
		}
	})

	It("never reports negative populations under extreme rates", func() {
		cfg.PredationRate = 3.5
		cfg.WolfDeathRate = 2.0
		cfg.InitialWolves = 4
		res, err := population.Simulate(cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, rec := range res.Records {
			Expect(rec.Rabbits).To(BeNumerically(">=", 0))
			Expect(rec.Wolves).To(BeNumerically(">=", 0))
		}
	})

	It("saturates instead of overflowing", func() {
		cfg.RabbitGrowthRate = 1e200
		cfg.Years = 3
		res, err := population.Simulate(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Final().Rabbits).To(Equal(math.MaxInt))
	})

	It("never introduces wolves when the introduction year is past the horizon", func() {
		cfg.WolfIntroductionYear = cfg.Years + 1
		res, err := population.Simulate(cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, rec := range res.Records {
			Expect(rec.Wolves).To(BeZero())
		}
	})

	DescribeTable("rejects invalid parameters",
		func(mutate func(*population.Config), field string) {
			mutate(&cfg)
			res, err := population.Simulate(cfg)
			Expect(err).To(MatchError(population.ErrInvalidParameter))
			Expect(res.Records).To(BeEmpty())

			var perr *population.ParameterError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Field).To(Equal(field))
		},
		Entry("negative rabbits", func(c *population.Config) { c.InitialRabbits = -10 }, "initial_rabbits"),
		Entry("negative wolves", func(c *population.Config) { c.InitialWolves = -1 }, "initial_wolves"),
		Entry("negative introduction count", func(c *population.Config) { c.WolfIntroductionCount = -3 }, "intro_count"),
		Entry("negative rabbit growth", func(c *population.Config) { c.RabbitGrowthRate = -0.1 }, "rabbit_growth"),
		Entry("negative wolf growth", func(c *population.Config) { c.WolfGrowthRate = -0.1 }, "wolf_growth"),
		Entry("negative wolf death", func(c *population.Config) { c.WolfDeathRate = -0.1 }, "wolf_death"),
		Entry("negative predation", func(c *population.Config) { c.PredationRate = -0.01 }, "predation"),
		Entry("NaN predation", func(c *population.Config) { c.PredationRate = math.NaN() }, "predation"),
		Entry("zero introduction year", func(c *population.Config) { c.WolfIntroductionYear = 0 }, "intro_year"),
		Entry("zero horizon", func(c *population.Config) { c.Years = 0 }, "years"),
		Entry("negative horizon", func(c *population.Config) { c.Years = -5 }, "years"),
	)

	It("reports the offending value in the message", func() {
		cfg.InitialRabbits = -10
		_, err := population.Simulate(cfg)
		Expect(err).To(MatchError(ContainSubstring("initial_rabbits=-10")))
	})
})

var _ = Describe("Config params", func() {
	It("round-trips every named parameter", func() {
		cfg := population.DefaultConfig()
		for _, name := range population.ParamNames() {
			Expect(cfg.SetParam(name, 7)).To(Succeed())
			Expect(cfg.Params()[name]).To(BeNumerically("==", 7))
		}
	})

	It("lists every parameter exactly once, sorted", func() {
		names := population.ParamNames()
		Expect(names).To(HaveLen(len(population.DefaultConfig().Params())))
		Expect(sort.StringsAreSorted(names)).To(BeTrue())
		for _, name := range names {
			Expect(population.DefaultConfig().Params()).To(HaveKey(name))
		}
	})

	It("rejects unknown names", func() {
		cfg := population.DefaultConfig()
		Expect(cfg.SetParam("foxes", 1)).To(MatchError(ContainSubstring("unknown parameter")))
	})
})

var _ = Describe("Result", func() {
	It("extracts a species series", func() {
		res := population.Result{Records: []population.YearRecord{
			{Year: 0, Rabbits: 3, Wolves: 1},
			{Year: 1, Rabbits: 4, Wolves: 0},
		}}
		Expect(res.Series(population.Rabbits)).To(Equal([]float64{3, 4}))
		Expect(res.Series(population.Wolves)).To(Equal([]float64{1, 0}))
		Expect(population.Result{}.Final()).To(Equal(population.YearRecord{}))
	})
})
