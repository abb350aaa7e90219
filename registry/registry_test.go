package registry_test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tablescaler/tablescaler/models"
	. "github.com/tablescaler/tablescaler/registry"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Registry", func() {
	var (
		logger   *lagertest.TestLogger
		registry *Registry
		table    models.Index
		gsi      models.Index
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("registry-test")
		registry = NewRegistry(logger)
		table = models.NewIndex("orders", "")
		gsi = models.NewIndex("orders", "by-customer")
	})

	Describe("AddOrReplace", func() {
		It("stores the config under its index", func() {
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(table))).To(Succeed())

			conf, found := registry.Get(table)
			Expect(found).To(BeTrue())
			Expect(conf).To(Equal(models.NewIndexScalingConfig(table)))
			Expect(registry.Len()).To(Equal(1))
			Eventually(logger.Buffer()).Should(gbytes.Say("index-added"))
		})

		It("keeps the table and its GSIs apart", func() {
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(table))).To(Succeed())
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(gsi))).To(Succeed())

			Expect(registry.Len()).To(Equal(2))
		})

		It("replaces an existing config for the same index", func() {
			conf := models.NewIndexScalingConfig(table)
			Expect(registry.AddOrReplace(conf)).To(Succeed())

			conf.MaxRead = 500
			Expect(registry.AddOrReplace(conf)).To(Succeed())

			stored, found := registry.Get(table)
			Expect(found).To(BeTrue())
			Expect(stored.MaxRead).To(Equal(int64(500)))
			Expect(registry.Len()).To(Equal(1))
		})

		It("rejects an invalid config and leaves the registry unchanged", func() {
			conf := models.NewIndexScalingConfig(table)
			Expect(registry.AddOrReplace(conf)).To(Succeed())

			invalid := conf
			invalid.MinRead = 100
			invalid.MaxRead = 10
			err := registry.AddOrReplace(invalid)
			Expect(errors.Is(err, models.ErrInvalidScalingConfig)).To(BeTrue())

			stored, _ := registry.Get(table)
			Expect(stored).To(Equal(conf))
			Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-add-index"))
		})

		It("rejects a zero minimum that would let capacity drop to 0", func() {
			conf := models.NewIndexScalingConfig(table)
			conf.MinRead = 0

			err := registry.AddOrReplace(conf)
			Expect(errors.Is(err, models.ErrInvalidScalingConfig)).To(BeTrue())
			Expect(registry.Len()).To(BeZero())
		})
	})

	Describe("Remove", func() {
		It("returns the removed config", func() {
			conf := models.NewIndexScalingConfig(gsi)
			Expect(registry.AddOrReplace(conf)).To(Succeed())

			removed, found := registry.Remove(gsi)
			Expect(found).To(BeTrue())
			Expect(removed).To(Equal(conf))
			Expect(registry.Len()).To(BeZero())
		})

		It("reports an absent index", func() {
			_, found := registry.Remove(gsi)
			Expect(found).To(BeFalse())
		})
	})

	Describe("Snapshot", func() {
		It("is empty for an empty registry", func() {
			Expect(registry.Snapshot()).To(BeEmpty())
		})

		It("returns every registered config", func() {
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(table))).To(Succeed())
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(gsi))).To(Succeed())

			Expect(registry.Snapshot()).To(ConsistOf(
				models.NewIndexScalingConfig(table),
				models.NewIndexScalingConfig(gsi),
			))
		})

		It("is not affected by later changes", func() {
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(table))).To(Succeed())
			snapshot := registry.Snapshot()

			registry.Remove(table)
			Expect(registry.AddOrReplace(models.NewIndexScalingConfig(gsi))).To(Succeed())

			Expect(snapshot).To(ConsistOf(models.NewIndexScalingConfig(table)))
		})
	})

	It("is safe for concurrent use", func() {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				index := models.NewIndex(fmt.Sprintf("table-%d", i), "")
				Expect(registry.AddOrReplace(models.NewIndexScalingConfig(index))).To(Succeed())
				registry.Snapshot()
				if i%2 == 0 {
					registry.Remove(index)
				}
			}(i)
		}
		wg.Wait()

		Expect(registry.Len()).To(Equal(10))
	})
})
